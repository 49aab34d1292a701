package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
	"github.com/vasiliy-maslov/shop-backend/internal/config"
)

var testJWTConfig = config.JWTConfig{
	AccessSecret:  "test-access-secret",
	RefreshSecret: "test-refresh-secret",
}

// signTestToken собирает токен руками, чтобы проверять разбор просроченных
// и испорченных токенов без подкручивания часов менеджера.
func signTestToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	manager := auth.NewTokenManager(testJWTConfig)

	token, err := manager.NewAccessToken("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := manager.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", subject)
}

func TestTokenManager_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	manager := auth.NewTokenManager(testJWTConfig)

	// refresh подписан другим секретом, access-проверку он не проходит
	token, err := manager.NewRefreshToken("user@example.com")
	require.NoError(t, err)

	_, err = manager.Parse(token)
	require.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	manager := auth.NewTokenManager(testJWTConfig)

	token := signTestToken(t, testJWTConfig.AccessSecret, "user@example.com", time.Now().Add(-time.Minute))

	_, err := manager.Parse(token)
	require.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenManager_Parse_Malformed(t *testing.T) {
	manager := auth.NewTokenManager(testJWTConfig)

	_, err := manager.Parse("not-a-jwt")
	require.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	manager := auth.NewTokenManager(testJWTConfig)

	token := signTestToken(t, "some-other-secret", "user@example.com", time.Now().Add(time.Minute))

	_, err := manager.Parse(token)
	require.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenManager_Parse_MissingSubject(t *testing.T) {
	manager := auth.NewTokenManager(testJWTConfig)

	token := signTestToken(t, testJWTConfig.AccessSecret, "", time.Now().Add(time.Minute))

	_, err := manager.Parse(token)
	require.ErrorIs(t, err, auth.ErrTokenPayload)
}
