// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"

	"github.com/moodrise/moodrise-go/internal/application/services"
	"github.com/moodrise/moodrise-go/internal/domain/content"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/performance"
	"github.com/moodrise/moodrise-go/internal/infrastructure/state"
	"github.com/moodrise/moodrise-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	SessionService      *services.SessionService
	ContentService      *services.ContentService
	NotificationService *services.NotificationService
	ProfanityService    *services.ProfanityService

	StateStore  *state.Store
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer() (*Container, error) {
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	catalog, err := content.LoadCatalog(config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content catalog: %w", err)
	}
	logger.Startup().Info("Content catalog loaded", "items", catalog.Len(), "path", config.CatalogPath)

	stateStore := state.NewStore(nil, logger)
	profanity := services.NewProfanityService()

	return &Container{
		SessionService:      services.NewSessionService(stateStore, logger, nil),
		ContentService:      services.NewContentService(catalog, profanity, logger),
		NotificationService: services.NewNotificationService(logger, nil, nil),
		ProfanityService:    profanity,

		StateStore:  stateStore,
		Logger:      logger,
		PerfTracker: performance.NewTracker(),
	}, nil
}
