package middleware

import (
	"crypto/subtle"
	"net/http"

	"enrollment-app/config"

	"github.com/gin-gonic/gin"
)

// RequireAdminKey guards the operator surface. This product has no user
// accounts to authenticate, so a static operator key is the whole story.
func RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.ADMIN_API_KEY
		if expected == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin API not configured"})
			c.Abort()
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
