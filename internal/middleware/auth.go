package middleware

import (
	"net/http"
	"strings"

	"quiz-iq-backend/internal/models"
	"quiz-iq-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// TokenAuth resolves the bearer token against the store and aborts with
// 401 when it matches no user. Existing clients send the bare token in
// the Authorization header, so both "Bearer <token>" and "<token>" are
// accepted.
func TokenAuth(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		user, err := store.FindUserByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by TokenAuth.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(userKey).(*models.User)
}
