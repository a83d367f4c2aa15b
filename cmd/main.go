package main

import "github.com/produtiva-app/backend/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()
	app.MustCreateSchema()

	app.MustListenAndServeHTTP()
}
