package v1

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the full REST surface under /api.
func RegisterRoutes(router gin.IRouter, h Handler) {
	api := router.Group("/api")

	api.POST("/login", h.HandleLogin)
	api.POST("/users", h.HandleCreateUser)
	api.POST("/profile", h.HandleGetProfile)

	authed := api.Group("", h.HandleAuthMiddleware)

	authed.PUT("/profile", h.HandleUpdateProfile)

	authed.POST("/tasks", h.HandleCreateTask)
	authed.GET("/tasks", h.HandleGetTasks)
	authed.GET("/tasks/done", h.HandleCountDoneTasks)
	authed.GET("/tasks/pending", h.HandleCountPendingTasks)
	authed.PATCH("/tasks/:id", h.HandleSetTaskStatus)
	authed.DELETE("/tasks/:id", h.HandleDeleteTask)

	authed.POST("/routine", h.HandleCreateRoutine)
	authed.GET("/routine", h.HandleGetRoutines)
	authed.DELETE("/routine/:id", h.HandleDeleteRoutine)

	authed.POST("/transaction", h.HandleCreateTransaction)
	authed.DELETE("/transaction/:id", h.HandleDeleteTransaction)
	authed.GET("/transaction/recents/:period", h.HandleRecentTransactions)

	authed.POST("/pomodoro/increment", h.HandleIncrementPomodoro)
	authed.GET("/pomodoro/stats/:onlyCount", h.HandlePomodoroStats)
}
