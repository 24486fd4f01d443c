package pg

import (
	"database/sql"
	"errors"
	"fmt"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/lib/pq"
)

type TokenRepo struct {
	db *sql.DB
}

func (r *TokenRepo) Add(token string) error {
	_, err := r.db.Exec(`INSERT INTO authentications (token) VALUES ($1)`, token)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			// Re-adding the same token is harmless.
			return nil
		}
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

func (r *TokenRepo) Delete(token string) error {
	_, err := r.db.Exec(`DELETE FROM authentications WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (r *TokenRepo) VerifyExistByToken(token string) error {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM authentications WHERE token = $1)`, token).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check token: %w", err)
	}
	if !exists {
		return &internal_errors.NotFound{Resource: "refresh token"}
	}
	return nil
}
