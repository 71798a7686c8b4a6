package handlers

import (
	"net/http"
	"time"

	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// ProfileHandlers mints anonymous user ids for first-run clients
type ProfileHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	started     time.Time
}

// NewProfileHandlers creates profile handlers with injected dependencies
func NewProfileHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProfileHandlers {
	return &ProfileHandlers{
		logger:      logger,
		perfTracker: perfTracker,
		started:     time.Now(),
	}
}

// PostProfile handles POST /api/v1/profile. Clients without a stored id
// call this once and keep the returned ULID.
func (h *ProfileHandlers) PostProfile(c *gin.Context) {
	userID := ulid.Make().String()
	if h.logger != nil {
		h.logger.System().Info("Provisioned anonymous user id")
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

// GetHealth handles GET /health
func (h *ProfileHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.started).String(),
		"perf":      h.perfTracker.GetOverallStats(),
		"recentOps": len(h.perfTracker.GetRecentMetrics(5 * time.Minute)),
	})
}
