package middleware

import (
	"net/http"
	"strings"

	"serviciohogar/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin API. It expects a bearer token
// issued by the auth service and rejects revoked sessions.
func AdminAuthMiddleware(auth admin.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if err := auth.VerifySession(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked token"})
			return
		}

		c.Set("adminToken", token)
		c.Next()
	}
}
