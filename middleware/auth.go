package middleware

import (
	"net/http"

	"scheduledash/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "session_id"

// SessionAuthMiddleware resolves the session cookie against the registry and
// aborts with 401 when the session is missing, expired, or carries an
// expired bearer token. On success the session is placed in the context
// under "session".
func SessionAuthMiddleware(registry *utils.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			return
		}

		session, ok := registry.Get(id)
		if !ok {
			zap.L().Debug("Rejected stale session cookie", zap.String("sessionID", id))
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		c.Set("session", session)
		c.Next()
	}
}

// SessionFromContext returns the browser session set by the auth middleware.
func SessionFromContext(c *gin.Context) (*utils.BrowserSession, bool) {
	value, exists := c.Get("session")
	if !exists {
		return nil, false
	}
	session, ok := value.(*utils.BrowserSession)
	return session, ok
}
