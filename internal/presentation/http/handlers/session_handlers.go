// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"

	"github.com/moodrise/moodrise-go/internal/application/services"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// SessionHandlers contains all session-lifecycle HTTP handlers
type SessionHandlers struct {
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewSessionHandlers creates session handlers with injected dependencies
func NewSessionHandlers(sessionService *services.SessionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SessionHandlers {
	return &SessionHandlers{
		sessionService: sessionService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

type startSessionRequest struct {
	UserID    string `json:"userId" binding:"required"`
	MoodStart int    `json:"moodStart"`
}

// PostStart handles POST /api/v1/session/start
func (h *SessionHandlers) PostStart(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("session:start", req.UserID)
	defer marker.Complete()

	outcome := h.sessionService.Start(req.UserID, req.MoodStart)
	if outcome == services.StartCapacityExceeded {
		// Daily cap reached: not an error, the session just does not start.
		marker.SetSuccess(false)
		c.JSON(http.StatusOK, gin.H{"ok": false, "reason": "dailyCapReached"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type moodCheckRequest struct {
	UserID string `json:"userId" binding:"required"`
	Mood   int    `json:"mood"`
}

// PostCheck handles POST /api/v1/session/check
func (h *SessionHandlers) PostCheck(c *gin.Context) {
	var req moodCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("session:check", req.UserID)
	defer marker.Complete()

	next := h.sessionService.MoodCheck(req.UserID, req.Mood)
	c.JSON(http.StatusOK, gin.H{"ok": true, "nextCheckTs": next})
}

type endSessionRequest struct {
	UserID  string `json:"userId" binding:"required"`
	MoodEnd int    `json:"moodEnd"`
}

// PostEnd handles POST /api/v1/session/end
func (h *SessionHandlers) PostEnd(c *gin.Context) {
	var req endSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("session:end", req.UserID)
	defer marker.Complete()

	summary := h.sessionService.End(req.UserID, req.MoodEnd)
	c.JSON(http.StatusOK, summary)
}

// GetNextCheck handles GET /api/v1/session/next-check
func (h *SessionHandlers) GetNextCheck(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"nextCheckTs": h.sessionService.NextCheck(userID)})
}

// GetLimitStatus handles GET /api/v1/limit/status
func (h *SessionHandlers) GetLimitStatus(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	c.JSON(http.StatusOK, h.sessionService.LimitStatus(userID))
}
