package handlers

import (
	"errors"
	"net/http"

	"scheduledash/middleware"
	"scheduledash/services/remote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginHandler forwards credentials to the remote auth service and, on
// success, issues the browser session cookie.
func (h *DashboardHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var creds remote.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth := remote.AuthService{Client: h.Client}
	resp, err := auth.Login(c.Request.Context(), creds)
	if err != nil {
		logger.Warn("Login failed", zap.String("username", creds.Username), zap.Error(err))
		message := "Invalid username or password"
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": message})
		return
	}

	session := h.Registry.Create(resp.Token, resp.User.Username)
	c.SetCookie(middleware.SessionCookie, session.ID, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": resp.User})
}

// LogoutHandler discards the browser session; the registry's eviction hook
// releases the dashboard state with it.
func (h *DashboardHandler) LogoutHandler(c *gin.Context) {
	if id, err := c.Cookie(middleware.SessionCookie); err == nil && id != "" {
		h.Registry.Delete(id)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
