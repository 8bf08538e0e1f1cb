package middleware

import (
	"log/slog"
	"strings"

	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/pkg/cookie"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase"
	"store-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token (header or access_token cookie) into
// the request actor and rejects the request with NEED_LOGIN otherwise.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, errs.ErrNeedLogin)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, errs.Mark(err, errs.ErrNeedLogin))
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		if token := strings.TrimSpace(after); token != "" {
			return token
		}
	}
	return cookie.GetAccessToken(c)
}

// GetActor returns the actor set by RequireAuth, or the anonymous actor.
func GetActor(c *gin.Context) shared.Actor {
	if v, exists := c.Get(ctxActorKey); exists {
		if actor, ok := v.(shared.Actor); ok {
			return actor
		}
	}
	return shared.Actor{}
}
