package handler

import (
	"errors"
	"net/http"

	"healthhub/internal/middleware"
	"healthhub/internal/service"
	"healthhub/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	service  service.AuthService
	sessions session.Manager
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, sessions session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, sessions: sessions, logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"` // UI toggle hint, never trusted for authorization
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	identity, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 200 with a flag so the login form handles both outcomes uniformly
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	// Rotate the session id: whatever session the browser already holds
	// is destroyed before a fresh one is issued.
	if old, err := c.Cookie(middleware.SessionCookieName); err == nil && old != "" {
		if err := h.sessions.Destroy(c.Request.Context(), old); err != nil {
			h.logger.Warn("failed to destroy previous session", zap.Error(err))
		}
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), *identity)
	if err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, 0, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    identity.Role,
	})
}

// Logout destroys the session unconditionally and always reports success
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if err := h.sessions.Destroy(c.Request.Context(), sessionID); err != nil {
			h.logger.Warn("failed to destroy session on logout", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
}
