package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"fitness-backend/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set for downstream handlers after authentication.
const (
	ContextUserID   = "userId"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware creates a Gin middleware for session token authentication.
// A missing token is 401; a token that fails verification is 403, so clients
// can tell "not logged in" apart from "token invalid or expired".
func AuthMiddleware(tokens *token.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied. Authentication token is missing."})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied. Authentication token is missing."})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			logger.Debug("Rejected session token", zap.Error(err))
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Token is invalid or expired."})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole gates a route group on the authenticated account's role.
// Composes after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": fmt.Sprintf("Access denied. %s role required.", role)})
			c.Abort()
			return
		}
		c.Next()
	}
}
