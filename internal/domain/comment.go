package domain

import (
	"time"

	"github.com/goforum-dev/goforum/internal/errors"
)

// DeletedCommentMask replaces the content of a soft-deleted comment in
// detailed projections. The stored content is never altered.
const DeletedCommentMask = "**komentar telah dihapus**"

type Comment struct {
	Id        CommentId
	Content   string
	IsDeleted bool
	Owner     UserId
	Thread    ThreadId
	Date      time.Time
}

// CommentCreationData is a validated comment-creation request. Owner
// comes from the access token, thread from the request path.
type CommentCreationData struct {
	Content string
	Owner   UserId
	Thread  ThreadId
}

func NewCommentCreationData(p Payload, owner UserId, thread ThreadId) (CommentCreationData, error) {
	const entity = "comment"

	if owner == "" {
		return CommentCreationData{}, &errors.IncompletePayload{Entity: entity, Field: "owner"}
	}
	if thread == "" {
		return CommentCreationData{}, &errors.IncompletePayload{Entity: entity, Field: "thread"}
	}
	if err := requireAll(entity, p, "commentContent"); err != nil {
		return CommentCreationData{}, err
	}

	content, err := stringField(entity, p, "commentContent")
	if err != nil {
		return CommentCreationData{}, err
	}

	return CommentCreationData{Content: content, Owner: owner, Thread: thread}, nil
}

// CommentInfo is the projection returned after a comment is created.
type CommentInfo struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// ThreadComment is a comment as it appears inside a detailed thread.
type ThreadComment struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      string        `json:"date"` // DateFormat
	Content   string        `json:"content"`
	IsDeleted bool          `json:"isDeleted"`
	LikeCount int           `json:"likeCount"`
	Replies   []ThreadReply `json:"replies"`
}

// Redacted returns a copy with the content masked if the comment was
// soft-deleted. Applied when the detailed thread is composed, so the
// raw content never leaves the use-case layer.
func (c ThreadComment) Redacted() ThreadComment {
	if c.IsDeleted {
		c.Content = DeletedCommentMask
	}
	return c
}
