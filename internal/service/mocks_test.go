package service

import (
	"sync"

	"github.com/goforum-dev/goforum/internal/domain"
)

// --- Shared mocks ---

// MockTokenManager mocks the TokenManager interface.
type MockTokenManager struct {
	generateAccessFunc  func(claims domain.TokenClaims) (string, error)
	generateRefreshFunc func(claims domain.TokenClaims) (string, error)
	verifyAccessFunc    func(token string) error
	verifyRefreshFunc   func(token string) error
	decodeAccessFunc    func(token string) (domain.TokenClaims, error)
	decodeRefreshFunc   func(token string) (domain.TokenClaims, error)

	mu                    sync.Mutex
	verifyAccessCalled    bool
	verifyAccessTokenArg  string
	verifyRefreshCalled   bool
	decodeAccessCalled    bool
	decodeAccessTokenArg  string
	decodeRefreshCalled   bool
	generateAccessCalled  bool
	generateAccessArg     domain.TokenClaims
	generateRefreshCalled bool
	generateRefreshArg    domain.TokenClaims
}

func (m *MockTokenManager) GenerateAccessToken(claims domain.TokenClaims) (string, error) {
	m.mu.Lock()
	m.generateAccessCalled = true
	m.generateAccessArg = claims
	m.mu.Unlock()

	if m.generateAccessFunc != nil {
		return m.generateAccessFunc(claims)
	}
	return "access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(claims domain.TokenClaims) (string, error) {
	m.mu.Lock()
	m.generateRefreshCalled = true
	m.generateRefreshArg = claims
	m.mu.Unlock()

	if m.generateRefreshFunc != nil {
		return m.generateRefreshFunc(claims)
	}
	return "refresh-token", nil
}

func (m *MockTokenManager) VerifyAccessToken(token string) error {
	m.mu.Lock()
	m.verifyAccessCalled = true
	m.verifyAccessTokenArg = token
	m.mu.Unlock()

	if m.verifyAccessFunc != nil {
		return m.verifyAccessFunc(token)
	}
	return nil
}

func (m *MockTokenManager) VerifyRefreshToken(token string) error {
	m.mu.Lock()
	m.verifyRefreshCalled = true
	m.mu.Unlock()

	if m.verifyRefreshFunc != nil {
		return m.verifyRefreshFunc(token)
	}
	return nil
}

func (m *MockTokenManager) DecodeAccessToken(token string) (domain.TokenClaims, error) {
	m.mu.Lock()
	m.decodeAccessCalled = true
	m.decodeAccessTokenArg = token
	m.mu.Unlock()

	if m.decodeAccessFunc != nil {
		return m.decodeAccessFunc(token)
	}
	return domain.TokenClaims{Id: "user-123", Username: "user123"}, nil
}

func (m *MockTokenManager) DecodeRefreshToken(token string) (domain.TokenClaims, error) {
	m.mu.Lock()
	m.decodeRefreshCalled = true
	m.mu.Unlock()

	if m.decodeRefreshFunc != nil {
		return m.decodeRefreshFunc(token)
	}
	return domain.TokenClaims{Id: "user-123", Username: "user123"}, nil
}

// MockPasswordHash mocks the security.PasswordHash interface.
type MockPasswordHash struct {
	hashFunc    func(plain domain.Password) (string, error)
	compareFunc func(plain domain.Password, digest string) error

	mu            sync.Mutex
	hashCalled    bool
	hashArg       domain.Password
	compareCalled bool
	comparePlain  domain.Password
	compareDigest string
}

func (m *MockPasswordHash) Hash(plain domain.Password) (string, error) {
	m.mu.Lock()
	m.hashCalled = true
	m.hashArg = plain
	m.mu.Unlock()

	if m.hashFunc != nil {
		return m.hashFunc(plain)
	}
	return "hashed:" + plain, nil
}

func (m *MockPasswordHash) Compare(plain domain.Password, digest string) error {
	m.mu.Lock()
	m.compareCalled = true
	m.comparePlain = plain
	m.compareDigest = digest
	m.mu.Unlock()

	if m.compareFunc != nil {
		return m.compareFunc(plain, digest)
	}
	return nil
}

// MockThreadExistChecker mocks the ThreadExistChecker interface.
type MockThreadExistChecker struct {
	verifyExistFunc func(id domain.ThreadId) error

	mu                sync.Mutex
	verifyExistCalled bool
	verifyExistArg    domain.ThreadId
}

func (m *MockThreadExistChecker) VerifyExistById(id domain.ThreadId) error {
	m.mu.Lock()
	m.verifyExistCalled = true
	m.verifyExistArg = id
	m.mu.Unlock()

	if m.verifyExistFunc != nil {
		return m.verifyExistFunc(id)
	}
	return nil
}

// MockCommentExistChecker mocks the CommentExistChecker interface.
type MockCommentExistChecker struct {
	verifyExistFunc func(id domain.CommentId) error

	mu                sync.Mutex
	verifyExistCalled bool
	verifyExistArg    domain.CommentId
}

func (m *MockCommentExistChecker) VerifyExistById(id domain.CommentId) error {
	m.mu.Lock()
	m.verifyExistCalled = true
	m.verifyExistArg = id
	m.mu.Unlock()

	if m.verifyExistFunc != nil {
		return m.verifyExistFunc(id)
	}
	return nil
}
