// Package security holds the password hashing capability used by the
// user and authentication use cases.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/logger"
)

type PasswordHash interface {
	Hash(plain domain.Password) (string, error)
	// Compare fails with Unauthenticated when plain does not match digest.
	Compare(plain domain.Password, digest string) error
}

type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt-backed PasswordHash. cost <= 0 selects
// bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain domain.Password) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(digest), nil
}

func (b *Bcrypt) Compare(plain domain.Password, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)); err != nil {
		return &internal_errors.Unauthenticated{Message: "invalid credentials"}
	}
	return nil
}
