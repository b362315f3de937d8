package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruimv/tribunal-backend/internal/auth"
	"github.com/ruimv/tribunal-backend/internal/cache"
	"github.com/ruimv/tribunal-backend/internal/config"
	"github.com/ruimv/tribunal-backend/internal/database"
	"github.com/ruimv/tribunal-backend/internal/token"
	"github.com/ruimv/tribunal-backend/pkg/logger"
	"gorm.io/gorm"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db     *gorm.DB
	users  *auth.Service
	tokens *token.Maker
	cache  cache.Cache
	logger *logger.Logger
	cfg    *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, tokens *token.Maker, cache cache.Cache, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:     db,
		users:  auth.NewService(db),
		tokens: tokens,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	var count int64
	dbHealthy := h.db.Model(&database.User{}).Count(&count).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}
