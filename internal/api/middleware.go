package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ruimv/tribunal-backend/internal/database"
	"github.com/ruimv/tribunal-backend/internal/token"
	"gorm.io/gorm"
)

// contextKeyUser is the gin context key for the authenticated user
const contextKeyUser = "currentUser"

// RequireAuth gates a route on a valid bearer token. The token's user is
// loaded fresh and re-checked for is_active, then stored in the context.
func (h *Handlers) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing authorization token")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := h.tokens.Parse(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortUnauthorized(c, "Token expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		var user database.User
		if err := h.db.First(&user, claims.UserID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				h.logger.Error("Failed to load token user", "user_id", claims.UserID, "error", err)
			}
			abortUnauthorized(c, "Invalid token")
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(contextKeyUser, &user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   msg,
	})
}

// currentUser returns the user resolved by RequireAuth
func currentUser(c *gin.Context) *database.User {
	return c.MustGet(contextKeyUser).(*database.User)
}
