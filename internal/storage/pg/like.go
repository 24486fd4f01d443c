package pg

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/goforum-dev/goforum/internal/domain"
)

type LikeRepo struct {
	db *sql.DB
}

func (r *LikeRepo) Exists(commentId domain.CommentId, userId domain.UserId) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM likes WHERE comment = $1 AND owner = $2)`,
		commentId, userId,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return exists, nil
}

func (r *LikeRepo) Add(commentId domain.CommentId, userId domain.UserId) error {
	id := "like-" + uuid.NewString()

	_, err := r.db.Exec(
		`INSERT INTO likes (id, owner, comment) VALUES ($1, $2, $3)`,
		id, userId, commentId,
	)
	if err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepo) Delete(commentId domain.CommentId, userId domain.UserId) error {
	_, err := r.db.Exec(
		`DELETE FROM likes WHERE comment = $1 AND owner = $2`,
		commentId, userId,
	)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
