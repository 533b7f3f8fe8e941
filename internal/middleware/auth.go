package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/pkg/apperrors"
)

// UserResolver turns a bearer token into a live user row. It is the
// services.AuthService in production and a fake in tests.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

const currentUserKey = "currentUser"

// AuthOptional resolves the token when present and continues either
// way. Handlers see an anonymous request when resolution fails.
func AuthOptional(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		setCurrentUser(c, user)
		c.Next()
	}
}

// AuthRequired aborts with 401 unless a valid token maps to an
// existing user.
func AuthRequired(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		user, err := resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		setCurrentUser(c, user)
		c.Next()
	}
}

// AdminOnly is AuthRequired plus a role check against the freshly
// loaded user row, so a revoked admin loses access on the next request.
func AdminOnly(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		user, err := resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		setCurrentUser(c, user)
		c.Next()
	}
}

func setCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
	ctx := logger.WithUserID(c.Request.Context(), user.ID)
	c.Request = c.Request.WithContext(ctx)
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
