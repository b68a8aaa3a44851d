package middleware

import (
	"net/http"

	"healthhub/internal/model"

	"github.com/gin-gonic/gin"
)

// RequireRole creates a middleware that checks the session role against
// an expected role. RequireSession must run first; the role checked here
// is the one loaded from the session store, never client input.
func RequireRole(expectedRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.Role != expectedRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized for this page"})
			return
		}
		c.Next()
	}
}

// RequirePatient checks that the session belongs to a patient
func RequirePatient() gin.HandlerFunc {
	return RequireRole(model.RolePatient)
}

// RequireDoctor checks that the session belongs to a doctor
func RequireDoctor() gin.HandlerFunc {
	return RequireRole(model.RoleDoctor)
}
