package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vasiliy-maslov/shop-backend/internal/config"
)

const (
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var (
	// ErrTokenExpired: подпись верна, но exp уже в прошлом.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid: токен не разобрался или подпись не сошлась.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenPayload: токен валиден, но в claims нет субъекта.
	ErrTokenPayload = errors.New("could not validate credentials")
)

// TokenManager выпускает и проверяет подписанные HS256-токены с claims
// {sub, exp}. Access- и refresh-токены подписываются разными секретами.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte

	now func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		now:           time.Now,
	}
}

// NewAccessToken issues a token for the subject, valid for 30 minutes.
func (m *TokenManager) NewAccessToken(subject string) (string, error) {
	return m.sign(subject, m.accessSecret, accessTokenTTL)
}

// NewRefreshToken issues a token for the subject, valid for 7 days.
func (m *TokenManager) NewRefreshToken(subject string) (string, error) {
	return m.sign(subject, m.refreshSecret, refreshTokenTTL)
}

func (m *TokenManager) sign(subject string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(m.now().Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies an access token and returns its subject.
func (m *TokenManager) Parse(token string) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", ErrTokenPayload
	}

	return claims.Subject, nil
}
