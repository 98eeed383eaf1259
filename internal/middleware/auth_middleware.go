package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/utils"
)

// AuthRequired validates the bearer token and sets user context for
// downstream handlers.
func AuthRequired(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secretKey)
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Subject)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleRequired gates a route group to the given roles. It expects
// AuthRequired to have run first.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		role, ok := value.(models.Role)
		if !ok || !allowed[role] {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminRequired restricts a route to full administrators.
func AdminRequired() gin.HandlerFunc {
	return RoleRequired(models.RoleAdmin)
}

// ManagerRequired allows admins and managers.
func ManagerRequired() gin.HandlerFunc {
	return RoleRequired(models.RoleAdmin, models.RoleManager)
}

// TeamMemberRequired allows any authenticated back-office role.
func TeamMemberRequired() gin.HandlerFunc {
	return RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleAgent)
}
