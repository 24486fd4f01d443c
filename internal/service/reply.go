package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/service/utils"
)

type ReplyService interface {
	Add(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, payload domain.Payload) (domain.ReplyInfo, error)
	Delete(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
}

// Reply mirrors the comment use case one level deeper: every operation
// re-verifies the whole parent chain (thread, then comment) so a reply
// cannot be touched through a detached thread or comment id.
type Reply struct {
	storage  ReplyStorage
	threads  ThreadExistChecker
	comments CommentExistChecker
	jwt      TokenManager
}

type ReplyStorage interface {
	Add(data domain.ReplyCreationData) (domain.Reply, error)
	VerifyExistById(id domain.ReplyId) error
	VerifyAccess(id domain.ReplyId, userId domain.UserId) error
	SoftDeleteById(id domain.ReplyId) error
}

type CommentExistChecker interface {
	VerifyExistById(id domain.CommentId) error
}

func NewReply(storage ReplyStorage, threads ThreadExistChecker, comments CommentExistChecker, jwt TokenManager) *Reply {
	return &Reply{storage, threads, comments, jwt}
}

func (r *Reply) Add(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, payload domain.Payload) (domain.ReplyInfo, error) {
	if err := r.threads.VerifyExistById(threadId); err != nil {
		return domain.ReplyInfo{}, err
	}
	if err := r.comments.VerifyExistById(commentId); err != nil {
		return domain.ReplyInfo{}, err
	}
	if err := r.jwt.VerifyAccessToken(accessToken); err != nil {
		return domain.ReplyInfo{}, err
	}
	claims, err := r.jwt.DecodeAccessToken(accessToken)
	if err != nil {
		return domain.ReplyInfo{}, err
	}

	data, err := domain.NewReplyCreationData(payload, claims.Id, commentId)
	if err != nil {
		return domain.ReplyInfo{}, err
	}
	data.Content = utils.SanitizeContent(data.Content)

	reply, err := r.storage.Add(data)
	if err != nil {
		return domain.ReplyInfo{}, err
	}

	return domain.ReplyInfo{Id: reply.Id, Content: reply.Content, Owner: reply.Owner}, nil
}

func (r *Reply) Delete(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if err := r.threads.VerifyExistById(threadId); err != nil {
		return err
	}
	if err := r.comments.VerifyExistById(commentId); err != nil {
		return err
	}
	if err := r.jwt.VerifyAccessToken(accessToken); err != nil {
		return err
	}
	claims, err := r.jwt.DecodeAccessToken(accessToken)
	if err != nil {
		return err
	}

	if err := r.storage.VerifyExistById(replyId); err != nil {
		return err
	}
	if err := r.storage.VerifyAccess(replyId, claims.Id); err != nil {
		return err
	}

	return r.storage.SoftDeleteById(replyId)
}
