package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

// AuthMiddleware validates the bearer token and stores the staff identity in
// the request context. The client-held copy of the staff record is never
// trusted; only the signed claims are.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.AuthenticationError())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims.StaffID == 0 {
			utils.RespondError(c, utils.AuthenticationError())
			c.Abort()
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequirePermission gates a route group on the static role permission table.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !models.HasPermission(role, permission) {
			utils.RespondError(c, utils.ForbiddenError("you do not have permission"))
			c.Abort()
			return
		}
		c.Next()
	}
}
