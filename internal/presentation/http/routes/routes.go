// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/moodrise/moodrise-go/internal/application/container"
	"github.com/moodrise/moodrise-go/internal/presentation/http/handlers"
	"github.com/moodrise/moodrise-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	sessionHandlers := handlers.NewSessionHandlers(container.SessionService, container.Logger, container.PerfTracker)
	contentHandlers := handlers.NewContentHandlers(container.ContentService, container.SessionService, container.Logger, container.PerfTracker)
	calendarHandlers := handlers.NewCalendarHandlers(container.SessionService, container.Logger, container.PerfTracker)
	notificationHandlers := handlers.NewNotificationHandlers(container.NotificationService, container.SessionService, container.Logger, container.PerfTracker)
	profileHandlers := handlers.NewProfileHandlers(container.Logger, container.PerfTracker)

	r.GET("/health", profileHandlers.GetHealth)

	api := r.Group("/api/v1")
	{
		session := api.Group("/session")
		{
			session.POST("/start", sessionHandlers.PostStart)
			session.POST("/check", sessionHandlers.PostCheck)
			session.POST("/end", sessionHandlers.PostEnd)
			session.GET("/next-check", sessionHandlers.GetNextCheck)
		}

		api.GET("/limit/status", sessionHandlers.GetLimitStatus)

		api.GET("/content", contentHandlers.GetContent)
		api.POST("/feedback", contentHandlers.PostFeedback)
		api.POST("/hide", contentHandlers.PostHide)

		api.GET("/notifications/today", notificationHandlers.GetToday)

		api.GET("/calendar", calendarHandlers.GetCalendar)
		api.GET("/calendar/streak", calendarHandlers.GetStreak)

		api.POST("/profile", profileHandlers.PostProfile)
	}

	return r
}
