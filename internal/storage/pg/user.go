package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type UserRepo struct {
	db *sql.DB
}

func (r *UserRepo) Register(reg domain.UserRegistration) (domain.RegisteredUser, error) {
	id := "user-" + uuid.NewString()

	var user domain.RegisteredUser
	err := r.db.QueryRow(
		`INSERT INTO users (id, username, fullname, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, fullname`,
		id, reg.Username, reg.Fullname, reg.Password,
	).Scan(&user.Id, &user.Username, &user.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.RegisteredUser{}, &internal_errors.Conflict{Message: "username is already taken"}
		}
		return domain.RegisteredUser{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepo) VerifyUsernameAvailability(username domain.Username) error {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return &internal_errors.Conflict{Message: "username is already taken"}
	}
	return nil
}

func (r *UserRepo) GetByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(
		`SELECT id, username, fullname, password FROM users WHERE username = $1`,
		username,
	).Scan(&user.Id, &user.Username, &user.Fullname, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, &internal_errors.NotFound{Resource: "user", Id: username}
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}
