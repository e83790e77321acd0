package middlewares

import (
	"context"
	"net/http"

	"trimspire/models"

	"github.com/gin-gonic/gin"
)

type UserLookup interface {
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(users UserLookup, isAdmin func(email string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		user, err := users.CurrentUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if !isAdmin(user.Email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
