package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

// MockUserStorage mocks the UserStorage interface.
type MockUserStorage struct {
	registerFunc           func(reg domain.UserRegistration) (domain.RegisteredUser, error)
	verifyAvailabilityFunc func(username domain.Username) error

	mu                 sync.Mutex
	registerCalled     bool
	registerArg        domain.UserRegistration
	availabilityCalled bool
	availabilityArg    domain.Username
}

func (m *MockUserStorage) Register(reg domain.UserRegistration) (domain.RegisteredUser, error) {
	m.mu.Lock()
	m.registerCalled = true
	m.registerArg = reg
	m.mu.Unlock()

	if m.registerFunc != nil {
		return m.registerFunc(reg)
	}
	return domain.RegisteredUser{Id: "user-123", Username: reg.Username, Fullname: reg.Fullname}, nil
}

func (m *MockUserStorage) VerifyUsernameAvailability(username domain.Username) error {
	m.mu.Lock()
	m.availabilityCalled = true
	m.availabilityArg = username
	m.mu.Unlock()

	if m.verifyAvailabilityFunc != nil {
		return m.verifyAvailabilityFunc(username)
	}
	return nil
}

func TestUserRegister(t *testing.T) {
	payload := domain.Payload{
		"username": "user123",
		"fullname": "user test",
		"password": "supersecret",
	}

	t.Run("orchestrates registration correctly", func(t *testing.T) {
		storage := &MockUserStorage{}
		hash := &MockPasswordHash{}
		svc := NewUser(storage, hash)

		profile, err := svc.Register(payload)
		require.NoError(t, err)

		assert.Equal(t, "user123", storage.availabilityArg)
		assert.Equal(t, "supersecret", hash.hashArg)
		assert.Equal(t, domain.UserRegistration{
			Username: "user123",
			Fullname: "user test",
			Password: "hashed:supersecret",
		}, storage.registerArg)
		assert.Equal(t, domain.RegisteredUser{Id: "user-123", Username: "user123", Fullname: "user test"}, profile)
	})

	t.Run("taken username fails with Conflict before hashing", func(t *testing.T) {
		storage := &MockUserStorage{
			verifyAvailabilityFunc: func(username domain.Username) error {
				return &internal_errors.Conflict{Message: "username is taken"}
			},
		}
		hash := &MockPasswordHash{}
		svc := NewUser(storage, hash)

		_, err := svc.Register(payload)
		assert.True(t, internal_errors.Is[*internal_errors.Conflict](err))
		assert.False(t, hash.hashCalled)
		assert.False(t, storage.registerCalled)
	})

	t.Run("malformed payload fails before any collaborator call", func(t *testing.T) {
		storage := &MockUserStorage{}
		hash := &MockPasswordHash{}
		svc := NewUser(storage, hash)

		_, err := svc.Register(domain.Payload{"username": "user123"})
		assert.True(t, internal_errors.Is[*internal_errors.IncompletePayload](err))
		assert.False(t, storage.availabilityCalled)
		assert.False(t, hash.hashCalled)
	})

	t.Run("hash failure propagates unchanged", func(t *testing.T) {
		hashErr := errors.New("bcrypt exploded")
		storage := &MockUserStorage{}
		hash := &MockPasswordHash{
			hashFunc: func(plain domain.Password) (string, error) { return "", hashErr },
		}
		svc := NewUser(storage, hash)

		_, err := svc.Register(payload)
		assert.Equal(t, hashErr, err)
		assert.False(t, storage.registerCalled)
	})
}
