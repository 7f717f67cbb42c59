package auth

import (
	"strings"
	"testing"
	"time"

	"athletehub/config"
	"athletehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

// newClockedJWTService returns a service whose clock is controlled by the caller.
func newClockedJWTService(t *testing.T, secret string) (*jwtService, *time.Time) {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	impl.now = func() time.Time { return now }

	return impl, &now
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, now := newClockedJWTService(t, testSecret)

	token, err := svc.GenerateToken(1712345678901)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1712345678901), claims.AthleteID)
	assert.Equal(t, "1712345678901", claims.Subject)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_Expiry(t *testing.T) {
	svc, now := newClockedJWTService(t, testSecret)
	issuedAt := *now

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)

	*now = issuedAt.Add(time.Hour - time.Second)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err, "token must be valid just before the TTL elapses")

	*now = issuedAt.Add(time.Hour)
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken), "token must be invalid once the TTL elapses")

	*now = issuedAt.Add(2 * time.Hour)
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, _ := newClockedJWTService(t, testSecret)
	other, _ := newClockedJWTService(t, "another_secret_key")

	foreign, err := other.GenerateToken(1)
	require.NoError(t, err)

	valid, err := svc.GenerateToken(1)
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":         "clearly-not-a-jwt-token-format",
		"empty":           "",
		"wrong secret":    foreign,
		"bad signature":   tampered,
		"none algorithm":  noneToken,
		"truncated token": parts[0] + "." + parts[1],
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, service.ErrInvalidToken))
		})
	}
}

func TestJWTService_NonNumericSubject(t *testing.T) {
	svc, now := newClockedJWTService(t, testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_MissingExpiry(t *testing.T) {
	svc, _ := newClockedJWTService(t, testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenTTL(t *testing.T) {
	cfg := newTestConfig(testSecret)
	cfg.Auth.TokenTTL = 0

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TokenTTL())
}
