package handlers

import (
	"net/http"
	"strconv"

	"github.com/moodrise/moodrise-go/internal/application/services"
	"github.com/moodrise/moodrise-go/internal/domain/content"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// ContentHandlers contains feed, feedback, and hide HTTP handlers
type ContentHandlers struct {
	contentService *services.ContentService
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewContentHandlers creates content handlers with injected dependencies
func NewContentHandlers(contentService *services.ContentService, sessionService *services.SessionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContentHandlers {
	return &ContentHandlers{
		contentService: contentService,
		sessionService: sessionService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetContent handles GET /api/v1/content. Fetching the feed counts as an
// interaction.
func (h *ContentHandlers) GetContent(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	tab, ok := content.ParseCategory(c.Query("tab"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tab must be one of Educate, Laugh, Motivate"})
		return
	}

	mood, err := strconv.Atoi(c.Query("mood"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood must be an integer"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
	}

	marker := h.perfTracker.StartOperation("content:curated", userID)
	defer marker.Complete()

	h.sessionService.RecordInteraction(userID)
	items := h.contentService.Curated(mood, tab, limit, h.sessionService.HiddenIDs(userID))
	marker.AddMetadata("items", len(items))
	c.JSON(http.StatusOK, items)
}

type feedbackRequest struct {
	UserID   string `json:"userId" binding:"required"`
	ItemID   string `json:"itemId" binding:"required"`
	Reaction string `json:"reaction"`
}

// PostFeedback handles POST /api/v1/feedback. Unknown reactions and item
// ids are tolerated as no-ops.
func (h *ContentHandlers) PostFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("content:feedback", req.UserID)
	defer marker.Complete()

	h.sessionService.RecordInteraction(req.UserID)
	h.contentService.ApplyFeedback(req.ItemID, content.Reaction(req.Reaction))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type hideRequest struct {
	UserID string `json:"userId" binding:"required"`
	ItemID string `json:"itemId" binding:"required"`
}

// PostHide handles POST /api/v1/hide
func (h *ContentHandlers) PostHide(c *gin.Context) {
	var req hideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("content:hide", req.UserID)
	defer marker.Complete()

	h.sessionService.Hide(req.UserID, req.ItemID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
