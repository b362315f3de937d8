package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ruimv/tribunal-backend/internal/cache"
	"github.com/ruimv/tribunal-backend/internal/config"
	"github.com/ruimv/tribunal-backend/internal/token"
	"github.com/ruimv/tribunal-backend/pkg/logger"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, tokens *token.Maker, cache cache.Cache, logger *logger.Logger, cfg *config.Config) {
	// Create handlers
	h := NewHandlers(db, tokens, cache, logger, cfg)

	// Auth endpoints
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)

	profile := router.Group("/auth", h.RequireAuth())
	{
		profile.GET("/profile", h.GetProfile)
		profile.PUT("/profile", h.UpdateProfile)
	}

	// Public case endpoints
	router.GET("/cases/search", h.SearchCases)
	router.GET("/cases/types", h.GetCaseTypes)
	router.GET("/cases/statuses", h.GetCaseStatuses)
	router.GET("/cases/:id", h.GetCase)

	// Public hearing endpoint
	router.GET("/hearings", h.ListHearings)

	// Public form endpoints
	router.GET("/forms", h.ListForms)
	router.GET("/forms/categories", h.GetFormCategories)
	router.GET("/forms/:id", h.GetForm)
	router.GET("/forms/:id/download", h.DownloadForm)

	// API routes
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)
	}
}
