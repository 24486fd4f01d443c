package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/logger"
	"github.com/goforum-dev/goforum/internal/security"
)

type AuthService interface {
	Login(payload domain.Payload) (domain.NewAuthentication, error)
	Logout(payload domain.Payload) error
	// Refresh mints a new access token for a valid, still-persisted
	// refresh token. The refresh token itself is not rotated.
	Refresh(payload domain.Payload) (string, error)
}

type Auth struct {
	users  AuthUserStorage
	tokens TokenStorage
	hash   security.PasswordHash
	jwt    TokenManager
}

type AuthUserStorage interface {
	// GetByUsername fails with NotFound when no such user exists.
	GetByUsername(username domain.Username) (domain.User, error)
}

// TokenStorage persists issued refresh tokens; a token absent from the
// store is revoked regardless of its cryptographic validity.
type TokenStorage interface {
	Add(token string) error
	Delete(token string) error
	// VerifyExistByToken fails with NotFound for unknown tokens.
	VerifyExistByToken(token string) error
}

func NewAuth(users AuthUserStorage, tokens TokenStorage, hash security.PasswordHash, jwt TokenManager) *Auth {
	return &Auth{users, tokens, hash, jwt}
}

func (a *Auth) Login(payload domain.Payload) (domain.NewAuthentication, error) {
	creds, err := domain.NewCredentials(payload)
	if err != nil {
		return domain.NewAuthentication{}, err
	}

	user, err := a.users.GetByUsername(creds.Username)
	if err != nil {
		return domain.NewAuthentication{}, err
	}

	if err := a.hash.Compare(creds.Password, user.Password); err != nil {
		return domain.NewAuthentication{}, err
	}

	claims := domain.TokenClaims{Id: user.Id, Username: user.Username}
	accessToken, err := a.jwt.GenerateAccessToken(claims)
	if err != nil {
		return domain.NewAuthentication{}, err
	}
	refreshToken, err := a.jwt.GenerateRefreshToken(claims)
	if err != nil {
		return domain.NewAuthentication{}, err
	}

	if err := a.tokens.Add(refreshToken); err != nil {
		return domain.NewAuthentication{}, err
	}

	logger.Log.Info("user logged in", "user_id", user.Id)
	return domain.NewAuthentication{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *Auth) Logout(payload domain.Payload) error {
	token, err := domain.NewRefreshToken(payload)
	if err != nil {
		return err
	}

	if err := a.tokens.VerifyExistByToken(token.Token); err != nil {
		return err
	}

	// A concurrent delete between the check and this call surfaces as a
	// plain storage error; single-row atomicity is the only guard.
	return a.tokens.Delete(token.Token)
}

func (a *Auth) Refresh(payload domain.Payload) (string, error) {
	token, err := domain.NewRefreshToken(payload)
	if err != nil {
		return "", err
	}

	if err := a.jwt.VerifyRefreshToken(token.Token); err != nil {
		return "", err
	}

	// Cryptographically valid but revoked tokens die here.
	if err := a.tokens.VerifyExistByToken(token.Token); err != nil {
		return "", err
	}

	claims, err := a.jwt.DecodeRefreshToken(token.Token)
	if err != nil {
		return "", err
	}

	return a.jwt.GenerateAccessToken(claims)
}
