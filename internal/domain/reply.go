package domain

import (
	"time"

	"github.com/goforum-dev/goforum/internal/errors"
)

// DeletedReplyMask replaces the content of a soft-deleted reply in
// detailed projections.
const DeletedReplyMask = "**balasan telah dihapus**"

type Reply struct {
	Id        ReplyId
	Content   string
	IsDeleted bool
	Owner     UserId
	Comment   CommentId
	Date      time.Time
}

// ReplyCreationData is a validated reply-creation request, scoped to a
// comment the same way a comment is scoped to a thread.
type ReplyCreationData struct {
	Content string
	Owner   UserId
	Comment CommentId
}

func NewReplyCreationData(p Payload, owner UserId, comment CommentId) (ReplyCreationData, error) {
	const entity = "reply"

	if owner == "" {
		return ReplyCreationData{}, &errors.IncompletePayload{Entity: entity, Field: "owner"}
	}
	if comment == "" {
		return ReplyCreationData{}, &errors.IncompletePayload{Entity: entity, Field: "comment"}
	}
	if err := requireAll(entity, p, "replyContent"); err != nil {
		return ReplyCreationData{}, err
	}

	content, err := stringField(entity, p, "replyContent")
	if err != nil {
		return ReplyCreationData{}, err
	}

	return ReplyCreationData{Content: content, Owner: owner, Comment: comment}, nil
}

// ReplyInfo is the projection returned after a reply is created.
type ReplyInfo struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

// ThreadReply is a reply as it appears inside a detailed thread.
type ThreadReply struct {
	Id        ReplyId  `json:"id"`
	Username  Username `json:"username"`
	Date      string   `json:"date"` // DateFormat
	Content   string   `json:"content"`
	IsDeleted bool     `json:"isDeleted"`
}

func (r ThreadReply) Redacted() ThreadReply {
	if r.IsDeleted {
		r.Content = DeletedReplyMask
	}
	return r
}
