package middleware

import (
	"net/http"
	"strings"

	"github.com/contempsico/portal-be/types"
	"github.com/contempsico/portal-be/utils"
	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware validates the Bearer token and stores the authenticated
// user in the gin context for downstream handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header is required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := utils.ParseUserToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Invalid token",
			})
			return
		}

		c.Set(userContextKey, &types.User{
			ID:      claims.ID,
			Name:    claims.Name,
			Email:   claims.Email,
			Profile: claims.Profile,
		})
		c.Next()
	}
}

// ManagementMiddleware gates routes reserved for the management profile.
// It must run after AuthMiddleware.
func ManagementMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Profile != types.PROFILE_MANAGEMENT {
			c.AbortWithStatusJSON(http.StatusForbidden, types.DataResponse{
				Status:  false,
				Message: "management profile required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware, or nil when the
// request was not authenticated.
func CurrentUser(c *gin.Context) *types.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*types.User)
	if !ok {
		return nil
	}
	return user
}
