package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coordinator/models"
	"coordinator/utils"
)

const ContextUserKey = "user"

// Authenticate reads the raw token from the Authorization header and puts
// the verified user into the request context. Every protected route sits
// behind this; there is no other authentication.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
			return
		}

		user, err := utils.VerifyToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user from the context. The second
// return is false on public routes.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
