package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogcms/api/internal/models"
)

// RequireRoles allows the request through when the authenticated user's role
// is in the given set. An empty set admits any authenticated user. There is
// no role hierarchy.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		if len(roleSet) > 0 {
			if _, ok := roleSet[user.Role]; !ok {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
		}

		c.Next()
	}
}
