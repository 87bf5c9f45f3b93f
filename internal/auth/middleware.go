package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserID is the gin context key the middleware stores the
// authenticated user's ID under.
const ContextUserID = "auth-user-id"

var (
	ErrNoAuthorizationHeader = errors.New("the Authorization header must be set")
	ErrMalformedHeader       = errors.New("the Authorization header must have the format 'Bearer <token>'")
)

// Middleware verifies the bearer token of a request and stores the
// authenticated user ID in the context. Requests without a valid token
// are rejected with 401.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoAuthorizationHeader.Error()})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMalformedHeader.Error()})
			return
		}

		userID, err := ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the context. The
// second return value is false when the middleware did not run.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}
