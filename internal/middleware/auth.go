package middleware

import (
	"net/http"
	"strings"

	"dayjob-record/internal/auth"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user
const ContextUserID = "user_id"

// JWTAuthMiddleware validates the JWT token in the Authorization header.
// With required=false every request runs as auth.LocalUserID.
func JWTAuthMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !required {
			c.Set(ContextUserID, auth.LocalUserID)
			c.Next()
			return
		}

		tokenString := ""
		if parts := strings.Split(c.GetHeader("Authorization"), " "); len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
		// Fallback for WebSocket/browser where custom headers cannot be set: allow token in query param
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token is required",
			})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
