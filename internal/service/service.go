// Package service contains the use-case orchestrators. Each service
// declares the storage and security capabilities it depends on as
// consumer-side interfaces; the pg storage and the jwt/security
// packages satisfy them at wiring time.
package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
)

// TokenManager is the token capability the use cases depend on.
// Generate functions are pure functions of the claims; Verify functions
// fail with Unauthenticated on an invalid or expired token.
type TokenManager interface {
	GenerateAccessToken(claims domain.TokenClaims) (string, error)
	GenerateRefreshToken(claims domain.TokenClaims) (string, error)
	VerifyAccessToken(token string) error
	VerifyRefreshToken(token string) error
	DecodeAccessToken(token string) (domain.TokenClaims, error)
	DecodeRefreshToken(token string) (domain.TokenClaims, error)
}
