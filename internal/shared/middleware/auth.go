package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"conduit-backend/pkg/jwt"
)

// ContextUserIDKey is where the authenticated viewer id lives in the gin
// context. For optional-auth routes an anonymous viewer is uuid.Nil.
const ContextUserIDKey = "userID"

// ViewerID returns the viewer id set by the auth middleware. uuid.Nil means
// the request is anonymous.
func ViewerID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

func parseToken(authHeader string, manager *jwt.Manager) (uuid.UUID, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
		return uuid.Nil, fmt.Errorf("invalid authorization header format")
	}

	claims, err := manager.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID in token")
	}

	return userID, nil
}

// AuthRequired rejects requests without a valid JWT.
func AuthRequired(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		userID, err := parseToken(authHeader, manager)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// AuthOptional resolves the viewer when a token is present and falls back to
// the anonymous viewer otherwise. A malformed token is treated as anonymous
// rather than rejected, so public reads keep working.
func AuthOptional(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(ContextUserIDKey, uuid.Nil)
			c.Next()
			return
		}

		userID, err := parseToken(authHeader, manager)
		if err != nil {
			userID = uuid.Nil
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
