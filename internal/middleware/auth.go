package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/pkg/response"
)

type scopeKey struct{}

// Auth verifies the Bearer token and attaches the caller scope to the request
// context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := SetScope(c.Request.Context(), model.Scope{
			UserID:   payload.UserID,
			Username: payload.Username,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SetScope stores the caller scope on the context.
func SetScope(ctx context.Context, s model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// GetScope returns the caller scope, or the zero value when unauthenticated.
func GetScope(ctx context.Context) model.Scope {
	s, _ := ctx.Value(scopeKey{}).(model.Scope)
	return s
}
