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

type ReplyRepo struct {
	db *sql.DB
}

func (r *ReplyRepo) Add(data domain.ReplyCreationData) (domain.Reply, error) {
	id := "reply-" + uuid.NewString()

	var reply domain.Reply
	err := r.db.QueryRow(
		`INSERT INTO replies (id, content, owner, comment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, content, is_deleted, owner, comment, date`,
		id, data.Content, data.Owner, data.Comment,
	).Scan(&reply.Id, &reply.Content, &reply.IsDeleted, &reply.Owner, &reply.Comment, &reply.Date)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("insert reply: %w", err)
	}
	return reply, nil
}

func (r *ReplyRepo) VerifyExistById(id domain.ReplyId) error {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM replies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check reply: %w", err)
	}
	if !exists {
		return &internal_errors.NotFound{Resource: "reply", Id: id}
	}
	return nil
}

func (r *ReplyRepo) VerifyAccess(id domain.ReplyId, userId domain.UserId) error {
	var owner domain.UserId
	err := r.db.QueryRow(`SELECT owner FROM replies WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return &internal_errors.NotFound{Resource: "reply", Id: id}
	}
	if err != nil {
		return fmt.Errorf("check reply owner: %w", err)
	}
	if owner != userId {
		return &internal_errors.Forbidden{Message: "you do not have access to this reply"}
	}
	return nil
}

func (r *ReplyRepo) SoftDeleteById(id domain.ReplyId) error {
	_, err := r.db.Exec(`UPDATE replies SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete reply: %w", err)
	}
	return nil
}

// SelectByCommentId returns the comment's replies oldest first with raw
// content.
func (r *ReplyRepo) SelectByCommentId(id domain.CommentId) ([]domain.ThreadReply, error) {
	rows, err := r.db.Query(
		`SELECT rp.id, u.username, rp.date, rp.content, rp.is_deleted
		 FROM replies rp
		 JOIN users u ON u.id = rp.owner
		 WHERE rp.comment = $1
		 ORDER BY rp.date ASC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("select replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ThreadReply
	for rows.Next() {
		var reply domain.ThreadReply
		var date time.Time
		if err := rows.Scan(&reply.Id, &reply.Username, &date, &reply.Content, &reply.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan reply: %w", err)
		}
		reply.Date = domain.FormatDate(date)
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate replies: %w", err)
	}
	return replies, nil
}
