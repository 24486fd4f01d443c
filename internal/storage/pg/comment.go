package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type CommentRepo struct {
	db *sql.DB
}

func (r *CommentRepo) Add(data domain.CommentCreationData) (domain.Comment, error) {
	id := "comment-" + uuid.NewString()

	var comment domain.Comment
	err := r.db.QueryRow(
		`INSERT INTO comments (id, content, owner, thread)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, content, is_deleted, owner, thread, date`,
		id, data.Content, data.Owner, data.Thread,
	).Scan(&comment.Id, &comment.Content, &comment.IsDeleted, &comment.Owner, &comment.Thread, &comment.Date)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return comment, nil
}

func (r *CommentRepo) VerifyExistById(id domain.CommentId) error {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check comment: %w", err)
	}
	if !exists {
		return &internal_errors.NotFound{Resource: "comment", Id: id}
	}
	return nil
}

func (r *CommentRepo) VerifyAccess(id domain.CommentId, userId domain.UserId) error {
	var owner domain.UserId
	err := r.db.QueryRow(`SELECT owner FROM comments WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return &internal_errors.NotFound{Resource: "comment", Id: id}
	}
	if err != nil {
		return fmt.Errorf("check comment owner: %w", err)
	}
	if owner != userId {
		return &internal_errors.Forbidden{Message: "you do not have access to this comment"}
	}
	return nil
}

// SoftDeleteById is idempotent; deleting an already deleted comment
// changes nothing.
func (r *CommentRepo) SoftDeleteById(id domain.CommentId) error {
	_, err := r.db.Exec(`UPDATE comments SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete comment: %w", err)
	}
	return nil
}

// SelectByThreadId returns the thread's comments oldest first, each
// with its like count and raw content; redaction of deleted comments
// happens in the service layer.
func (r *CommentRepo) SelectByThreadId(id domain.ThreadId) ([]domain.ThreadComment, error) {
	rows, err := r.db.Query(
		`SELECT c.id, u.username, c.date, c.content, c.is_deleted, COUNT(l.id)
		 FROM comments c
		 JOIN users u ON u.id = c.owner
		 LEFT JOIN likes l ON l.comment = c.id
		 WHERE c.thread = $1
		 GROUP BY c.id, u.username
		 ORDER BY c.date ASC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.ThreadComment
	for rows.Next() {
		var comment domain.ThreadComment
		var date time.Time
		if err := rows.Scan(&comment.Id, &comment.Username, &date, &comment.Content, &comment.IsDeleted, &comment.LikeCount); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comment.Date = domain.FormatDate(date)
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
