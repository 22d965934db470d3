package middlewares

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

// UserLookup resolves the token subject to an account so that revoked or
// disabled users are rejected even while their token is still valid.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

/*
* JWTAuth authenticates the request from the Authorization header. On
* success the principal's username, role and user id are stored on the
* context for the handlers downstream.
 */
func JWTAuth(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.WriteError(c, utils.Unauthenticated("Missing or malformed Authorization header"))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		username, userRole, err := utils.VerifyToken(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.WriteError(c, utils.Unauthenticated("Token has expired"))
				return
			}
			utils.WriteError(c, utils.Unauthenticated("Invalid token"))
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			utils.WriteError(c, err)
			return
		}
		if user == nil || !user.Usable() {
			utils.WriteError(c, utils.Unauthenticated("Account is not usable"))
			return
		}

		c.Set("username", username)
		c.Set("role", userRole)
		c.Set("userId", user.ID.Hex())
		c.Next()
	}
}

// RequireRoles rejects authenticated principals whose role is not in the
// allowed set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString("role")
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		utils.WriteError(c, utils.Forbidden("You do not have permission to access this resource"))
	}
}
