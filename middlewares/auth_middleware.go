// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "auth_token"
	userIDKey     = "userID"
)

// SessionVerifier resolves a session token to a user id.
type SessionVerifier interface {
	Authenticate(session string) (string, error)
}

// AuthMiddleware rejects requests without a valid session cookie and stores the
// user id in the context.
func AuthMiddleware(v SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		userID, err := v.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}
