package jwt

import (
	"testing"
	"time"

	"ZWH-Backend/domain"
	"ZWH-Backend/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC))
	svc := NewJWTServiceWithClock("secret", clk)

	token := svc.GenerateTokenUser("test1@example.com", domain.RoleUser)
	require.NotEmpty(t, token)

	email, role, err := svc.GetUserEmailByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "test1@example.com", email)
	assert.Equal(t, domain.RoleUser, role)
}

func TestExpiredToken(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC))
	svc := NewJWTServiceWithClock("secret", clk)
	token := svc.GenerateTokenUser("test1@example.com", domain.RoleUser)

	clk.Advance(tokenLifetime + time.Minute)

	_, _, err := svc.GetUserEmailByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenSignedWithOtherSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	token := NewJWTServiceWithClock("one", clk).GenerateTokenUser("a@b.co", domain.RoleUser)

	_, _, err := NewJWTServiceWithClock("two", clk).GetUserEmailByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageToken(t *testing.T) {
	svc := NewJWTServiceWithClock("secret", clock.NewRealClock())

	_, _, err := svc.GetUserEmailByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
