package middleware

import (
	"errors"
	"net/http"

	"healthhub/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the opaque session id
	SessionCookieName = "healthhub_session"

	AuthIdentityKey = "authIdentity"
	SessionIDKey    = "sessionID"
)

// RequireSession aborts with 401 unless the request carries a cookie
// resolving to a live session. On success the identity and session id
// are placed in the gin context for downstream handlers.
func RequireSession(sessions session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not logged in"})
			return
		}

		identity, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				// Expired, destroyed and unknown sessions all look the same
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not logged in"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		c.Set(AuthIdentityKey, identity)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}

// IdentityFromContext returns the session identity set by RequireSession
func IdentityFromContext(c *gin.Context) (*session.Identity, bool) {
	val, exists := c.Get(AuthIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := val.(*session.Identity)
	return identity, ok
}
