package middleware

import (
	"strings"

	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers after a successful check.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware validates the bearer session token and re-resolves the
// user from the credential store. The token payload alone is never
// trusted: a token for a user that no longer exists is rejected.
func AuthMiddleware(users usecase.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := services.ValidateToken(tokenString)
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		user, err := users.FindUserByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			utils.InternalError(c, "Failed to resolve user")
			c.Abort()
			return
		}
		if user == nil || user.UserID != claims.UserID {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.UserID)
		c.Set(ContextEmail, user.Email)

		c.Next()
	}
}
