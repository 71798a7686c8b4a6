package handlers

import (
	"net/http"

	"github.com/moodrise/moodrise-go/internal/application/services"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// CalendarHandlers contains calendar and streak HTTP handlers
type CalendarHandlers struct {
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCalendarHandlers creates calendar handlers with injected dependencies
func NewCalendarHandlers(sessionService *services.SessionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CalendarHandlers {
	return &CalendarHandlers{
		sessionService: sessionService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetCalendar handles GET /api/v1/calendar
func (h *CalendarHandlers) GetCalendar(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	marker := h.perfTracker.StartOperation("calendar:get", userID)
	defer marker.Complete()

	h.sessionService.RecordInteraction(userID)
	c.JSON(http.StatusOK, h.sessionService.Calendar(userID))
}

// GetStreak handles GET /api/v1/calendar/streak
func (h *CalendarHandlers) GetStreak(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	marker := h.perfTracker.StartOperation("calendar:streak", userID)
	defer marker.Complete()

	h.sessionService.RecordInteraction(userID)
	c.JSON(http.StatusOK, gin.H{"goodMoodStreakDays": h.sessionService.Streak(userID)})
}
