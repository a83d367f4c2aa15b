package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtiva-app/backend/internal/services"
)

type pomodoroStatsResponse struct {
	Count         int `json:"count"`
	CurrentStreak int `json:"currentStreak"`
}

func newPomodoroStatsResponse(stats *services.PomodoroStats) pomodoroStatsResponse {
	return pomodoroStatsResponse{
		Count:         stats.Count,
		CurrentStreak: stats.CurrentStreak,
	}
}

func (h *handlerImpl) HandleIncrementPomodoro(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	stats, err := h.pomodoro.IncrementToday(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to increment pomodoro count")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, newPomodoroStatsResponse(stats))
}

// HandlePomodoroStats keeps the client's overloaded stats route: the
// :onlyCount segment picks between today's full counters (1) and a
// streak-only snapshot from the most recent day row (0).
func (h *handlerImpl) HandlePomodoroStats(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var (
		stats *services.PomodoroStats
		err   error
	)
	switch c.Param("onlyCount") {
	case "1":
		stats, err = h.pomodoro.TodayCount(c, userID)
	case "0":
		stats, err = h.pomodoro.LatestStreak(c, userID)
	default:
		h.logger.Error().
			Str("only_count", c.Param("onlyCount")).
			Msg("invalid onlyCount flag")
		abort(c, newBadRequestError("onlyCount must be 0 or 1"))
		return
	}
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get pomodoro stats")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, newPomodoroStatsResponse(stats))
}
