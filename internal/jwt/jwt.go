package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/logger"
)

// TokenManager issues and verifies the access/refresh token pair.
// Access and refresh tokens are signed with independent keys and TTLs,
// so a leaked refresh token can never pass as an access token.
type TokenManager interface {
	GenerateAccessToken(claims domain.TokenClaims) (string, error)
	GenerateRefreshToken(claims domain.TokenClaims) (string, error)
	VerifyAccessToken(token string) error
	VerifyRefreshToken(token string) error
	DecodeAccessToken(token string) (domain.TokenClaims, error)
	DecodeRefreshToken(token string) (domain.TokenClaims, error)
}

type claims struct {
	Uid      domain.UserId   `json:"uid"`
	Username domain.Username `json:"username"`
	jwt.RegisteredClaims
}

type Manager struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{accessKey, refreshKey, accessTTL, refreshTTL}
}

func (m *Manager) generate(c domain.TokenClaims, key string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Uid:      c.Id,
		Username: c.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString([]byte(key))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", err
	}
	return signed, nil
}

func (m *Manager) GenerateAccessToken(c domain.TokenClaims) (string, error) {
	return m.generate(c, m.accessKey, m.accessTTL)
}

func (m *Manager) GenerateRefreshToken(c domain.TokenClaims) (string, error) {
	return m.generate(c, m.refreshKey, m.refreshTTL)
}

func (m *Manager) parse(tokenStr, key string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.Unauthenticated{Message: "unexpected signing method"}
		}
		return []byte(key), nil
	})
	if err != nil {
		return nil, &internal_errors.Unauthenticated{Message: "token is invalid or expired"}
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, &internal_errors.Unauthenticated{Message: "token is invalid or expired"}
	}
	return c, nil
}

func (m *Manager) VerifyAccessToken(token string) error {
	_, err := m.parse(token, m.accessKey)
	return err
}

func (m *Manager) VerifyRefreshToken(token string) error {
	_, err := m.parse(token, m.refreshKey)
	return err
}

func (m *Manager) decode(tokenStr, key string) (domain.TokenClaims, error) {
	c, err := m.parse(tokenStr, key)
	if err != nil {
		return domain.TokenClaims{}, err
	}
	return domain.TokenClaims{Id: c.Uid, Username: c.Username}, nil
}

// DecodeAccessToken extracts the identity claims from an access token.
// A refresh token is rejected, it is signed with the other key.
func (m *Manager) DecodeAccessToken(tokenStr string) (domain.TokenClaims, error) {
	return m.decode(tokenStr, m.accessKey)
}

// DecodeRefreshToken extracts the identity claims from a refresh token.
func (m *Manager) DecodeRefreshToken(tokenStr string) (domain.TokenClaims, error) {
	return m.decode(tokenStr, m.refreshKey)
}
