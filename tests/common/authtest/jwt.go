//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/config"
	"store-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg   config.JWTConfig
	clock clock.Clock
}

func NewJWTHelper(cfg config.JWTConfig, clk clock.Clock) *JWTHelper {
	return &JWTHelper{cfg: cfg, clock: clk}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string, roles ...string) string {
	t.Helper()
	duration, err := h.cfg.TokenDuration()
	require.NoError(t, err)

	service := jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer, h.clock)
	token, _, err := service.GenerateToken(userID, roles)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token that expired a minute before the
// helper's current time.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, roles ...string) string {
	t.Helper()
	issuedAt := clock.NewMockClock(h.clock.Now().Add(-2 * time.Minute))
	service := jwt.NewService(h.cfg.Secret, time.Minute, h.cfg.Issuer, issuedAt)
	token, _, err := service.GenerateToken(userID, roles)
	require.NoError(t, err)
	return token
}
