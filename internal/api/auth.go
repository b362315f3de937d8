package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruimv/tribunal-backend/internal/auth"
)

// Register handles new user registration
func (h *Handlers) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing or invalid fields (username, email, password)",
		})
		return
	}

	user, err := h.users.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken),
			errors.Is(err, auth.ErrEmailTaken),
			errors.Is(err, auth.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
		default:
			h.logger.Error("Failed to register user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to register user",
			})
		}
		return
	}

	h.logger.Info("User registered", "username", user.Username, "role", user.Role)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login authenticates a user and issues a bearer token
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing fields (username, password)",
		})
		return
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound), errors.Is(err, auth.ErrBadPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   err.Error(),
			})
		default:
			h.logger.Error("Failed to authenticate user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to authenticate user",
			})
		}
		return
	}

	tokenStr, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("Failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   tokenStr,
		"user":    user,
	})
}

// GetProfile returns the authenticated user's record
func (h *Handlers) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    currentUser(c),
	})
}

// UpdateProfile updates the authenticated user's email and/or password
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"omitempty,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid fields",
		})
		return
	}

	user := currentUser(c)
	if err := h.users.UpdateProfile(user, req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Email already registered by another user",
			})
			return
		}
		h.logger.Error("Failed to update profile", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}
