package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/produtiva-app/backend/internal/services"
)

type Handler interface {
	HandleLogin(c *gin.Context)
	HandleCreateUser(c *gin.Context)
	HandleGetProfile(c *gin.Context)
	HandleUpdateProfile(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleSetTaskStatus(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleCountDoneTasks(c *gin.Context)
	HandleCountPendingTasks(c *gin.Context)

	HandleCreateRoutine(c *gin.Context)
	HandleGetRoutines(c *gin.Context)
	HandleDeleteRoutine(c *gin.Context)

	HandleCreateTransaction(c *gin.Context)
	HandleDeleteTransaction(c *gin.Context)
	HandleRecentTransactions(c *gin.Context)

	HandleIncrementPomodoro(c *gin.Context)
	HandlePomodoroStats(c *gin.Context)
}

type handlerImpl struct {
	logger       zerolog.Logger
	auth         services.AuthService
	tasks        services.TaskService
	routines     services.RoutineService
	transactions services.TransactionService
	pomodoro     services.PomodoroService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
	routineService services.RoutineService,
	transactionService services.TransactionService,
	pomodoroService services.PomodoroService,
) Handler {
	return &handlerImpl{
		logger:       logger,
		auth:         authService,
		tasks:        taskService,
		routines:     routineService,
		transactions: transactionService,
		pomodoro:     pomodoroService,
	}
}
