package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogcms/api/internal/config"
	"blogcms/api/internal/models"
	"blogcms/api/internal/security"
)

const (
	ContextUser   = "current_user"
	ContextClaims = "access_claims"
)

// UserLookup resolves the token subject to a user record. Defined here so
// the gate does not depend on the repository package directly.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Auth is the authentication gate: it extracts the bearer token, verifies
// signature, expiry and the access type claim, confirms the account still
// exists, and attaches the identity to the request context. Access tokens
// are stateless; no session or token row is consulted.
func Auth(cfg *config.AppConfig, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		if claims.Type != models.TokenTypeAccess {
			abortUnauthenticated(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextClaims, *claims)
		c.Set(ContextUser, user)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
}

// CurrentUser returns the identity the gate attached, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(ContextUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
