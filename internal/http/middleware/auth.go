package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk/internal/db"
	"github.com/coursedesk/coursedesk/internal/model"
)

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// checks "Authorization: Basic <credentials>", resolves the email to a
// user, verifies the password against the stored hash, and sets
// "currentUser" in context. The lookup runs on every request; nothing
// is cached between calls.
func BasicAuth(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		user, err := store.GetUserByEmail(email)
		if err != nil || !CheckPassword(user.HashedPassword, password) {
			log.Warn().Str("email", email).Msg("authentication failure")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// retrieves *model.User from Gin context (after BasicAuth has run).
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	u, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := u.(*model.User)
	return user, ok
}
