package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/security"
)

type UserService interface {
	Register(payload domain.Payload) (domain.RegisteredUser, error)
}

type User struct {
	storage UserStorage
	hash    security.PasswordHash
}

type UserStorage interface {
	// Register persists the registration (password already hashed) and
	// returns the public profile with the server-assigned id.
	Register(reg domain.UserRegistration) (domain.RegisteredUser, error)
	// VerifyUsernameAvailability fails with Conflict when taken.
	VerifyUsernameAvailability(username domain.Username) error
}

func NewUser(storage UserStorage, hash security.PasswordHash) *User {
	return &User{storage, hash}
}

func (u *User) Register(payload domain.Payload) (domain.RegisteredUser, error) {
	reg, err := domain.NewUserRegistration(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := u.storage.VerifyUsernameAvailability(reg.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	digest, err := u.hash.Hash(reg.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	reg.Password = digest

	return u.storage.Register(reg)
}
