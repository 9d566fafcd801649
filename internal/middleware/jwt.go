package middleware

import (
	"image_gallery/internal/session" // Session store
	"image_gallery/internal/utils"   // JWT utility functions
	"net/http"                       // HTTP status codes
	"strings"                        // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuthMiddleware validates JWT tokens, checks the backing session is still
// live, and extracts user information
func JWTAuthMiddleware(secret string, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// A valid signature is not enough: logout revokes the session in Redis
		live, err := sessions.Exists(c.Request.Context(), claims.ID)
		if err != nil || !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}
		c.Set("userID", claims.UserID)  // Store userID in context
		c.Set("sessionID", claims.ID)   // Store session id for logout
		c.Next()                        // Proceed to the next handler
	}
}
