package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/service/utils"
)

type ThreadService interface {
	Add(accessToken string, payload domain.Payload) (domain.ThreadInfo, error)
	GetDetailedById(id domain.ThreadId) (domain.DetailedThread, error)
}

type Thread struct {
	storage  ThreadStorage
	comments ThreadCommentStorage
	replies  ThreadReplyStorage
	jwt      TokenManager
}

type ThreadStorage interface {
	Add(data domain.ThreadCreationData) (domain.Thread, error)
	// VerifyExistById fails with NotFound.
	VerifyExistById(id domain.ThreadId) error
	GetDetailedById(id domain.ThreadId) (domain.DetailedThread, error)
}

type ThreadCommentStorage interface {
	// SelectByThreadId returns comments ordered by creation time ascending.
	SelectByThreadId(id domain.ThreadId) ([]domain.ThreadComment, error)
}

type ThreadReplyStorage interface {
	// SelectByCommentId returns replies ordered by creation time ascending.
	SelectByCommentId(id domain.CommentId) ([]domain.ThreadReply, error)
}

func NewThread(storage ThreadStorage, comments ThreadCommentStorage, replies ThreadReplyStorage, jwt TokenManager) *Thread {
	return &Thread{storage, comments, replies, jwt}
}

func (t *Thread) Add(accessToken string, payload domain.Payload) (domain.ThreadInfo, error) {
	if err := t.jwt.VerifyAccessToken(accessToken); err != nil {
		return domain.ThreadInfo{}, err
	}
	claims, err := t.jwt.DecodeAccessToken(accessToken)
	if err != nil {
		return domain.ThreadInfo{}, err
	}

	// Owner comes from the verified token, never from the payload.
	data, err := domain.NewThreadCreationData(payload, claims.Id)
	if err != nil {
		return domain.ThreadInfo{}, err
	}
	data.Title = utils.SanitizeTitle(data.Title)
	data.Body = utils.SanitizeContent(data.Body)

	thread, err := t.storage.Add(data)
	if err != nil {
		return domain.ThreadInfo{}, err
	}

	return domain.ThreadInfo{Id: thread.Id, Title: thread.Title, Owner: thread.Owner}, nil
}

// GetDetailedById composes the full read model for one thread: the
// thread, its comments oldest first, and each comment's replies oldest
// first. Reply fetches are sequential per comment; soft-deleted items
// are redacted here so raw content never reaches the delivery layer.
func (t *Thread) GetDetailedById(id domain.ThreadId) (domain.DetailedThread, error) {
	if err := t.storage.VerifyExistById(id); err != nil {
		return domain.DetailedThread{}, err
	}

	detailed, err := t.storage.GetDetailedById(id)
	if err != nil {
		return domain.DetailedThread{}, err
	}

	comments, err := t.comments.SelectByThreadId(id)
	if err != nil {
		return domain.DetailedThread{}, err
	}

	composed := make([]domain.ThreadComment, 0, len(comments))
	for _, comment := range comments {
		replies, err := t.replies.SelectByCommentId(comment.Id)
		if err != nil {
			return domain.DetailedThread{}, err
		}

		items := make([]domain.ThreadReply, 0, len(replies))
		for _, reply := range replies {
			items = append(items, reply.Redacted())
		}

		comment.Replies = items
		composed = append(composed, comment.Redacted())
	}

	detailed.Comments = composed
	return detailed, nil
}
