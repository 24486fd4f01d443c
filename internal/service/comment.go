package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/service/utils"
)

type CommentService interface {
	Add(accessToken string, threadId domain.ThreadId, payload domain.Payload) (domain.CommentInfo, error)
	Delete(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error
}

type Comment struct {
	storage CommentStorage
	threads ThreadExistChecker
	jwt     TokenManager
}

type CommentStorage interface {
	Add(data domain.CommentCreationData) (domain.Comment, error)
	// VerifyExistById fails with NotFound.
	VerifyExistById(id domain.CommentId) error
	// VerifyAccess fails with Forbidden when userId does not own the comment.
	VerifyAccess(id domain.CommentId, userId domain.UserId) error
	// SoftDeleteById marks the comment deleted; deleting an already
	// deleted comment is a no-op.
	SoftDeleteById(id domain.CommentId) error
}

type ThreadExistChecker interface {
	VerifyExistById(id domain.ThreadId) error
}

func NewComment(storage CommentStorage, threads ThreadExistChecker, jwt TokenManager) *Comment {
	return &Comment{storage, threads, jwt}
}

func (c *Comment) Add(accessToken string, threadId domain.ThreadId, payload domain.Payload) (domain.CommentInfo, error) {
	if err := c.threads.VerifyExistById(threadId); err != nil {
		return domain.CommentInfo{}, err
	}
	if err := c.jwt.VerifyAccessToken(accessToken); err != nil {
		return domain.CommentInfo{}, err
	}
	claims, err := c.jwt.DecodeAccessToken(accessToken)
	if err != nil {
		return domain.CommentInfo{}, err
	}

	data, err := domain.NewCommentCreationData(payload, claims.Id, threadId)
	if err != nil {
		return domain.CommentInfo{}, err
	}
	data.Content = utils.SanitizeContent(data.Content)

	comment, err := c.storage.Add(data)
	if err != nil {
		return domain.CommentInfo{}, err
	}

	return domain.CommentInfo{Id: comment.Id, Content: comment.Content, Owner: comment.Owner}, nil
}

// Delete soft-deletes a comment. Existence is checked before ownership,
// so an unauthorized caller learns the comment exists but nothing more;
// no mutation happens unless both checks pass.
func (c *Comment) Delete(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := c.threads.VerifyExistById(threadId); err != nil {
		return err
	}
	if err := c.jwt.VerifyAccessToken(accessToken); err != nil {
		return err
	}
	claims, err := c.jwt.DecodeAccessToken(accessToken)
	if err != nil {
		return err
	}

	if err := c.storage.VerifyExistById(commentId); err != nil {
		return err
	}
	if err := c.storage.VerifyAccess(commentId, claims.Id); err != nil {
		return err
	}

	return c.storage.SoftDeleteById(commentId)
}
