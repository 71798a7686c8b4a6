package handlers

import (
	"net/http"

	"github.com/moodrise/moodrise-go/internal/application/services"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// NotificationHandlers contains wellness-nudge HTTP handlers
type NotificationHandlers struct {
	notificationService *services.NotificationService
	sessionService      *services.SessionService
	logger              *logging.ChanneledLogger
	perfTracker         *performance.Tracker
}

// NewNotificationHandlers creates notification handlers with injected dependencies
func NewNotificationHandlers(notificationService *services.NotificationService, sessionService *services.SessionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *NotificationHandlers {
	return &NotificationHandlers{
		notificationService: notificationService,
		sessionService:      sessionService,
		logger:              logger,
		perfTracker:         perfTracker,
	}
}

// GetToday handles GET /api/v1/notifications/today
func (h *NotificationHandlers) GetToday(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	marker := h.perfTracker.StartOperation("notifications:today", userID)
	defer marker.Complete()

	latestMood := h.sessionService.CurrentMood(userID)
	h.sessionService.RecordInteraction(userID)
	c.JSON(http.StatusOK, h.notificationService.TodayReminders(latestMood))
}
