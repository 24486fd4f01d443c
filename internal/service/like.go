package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
)

type LikeService interface {
	Toggle(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error
}

// Like toggles a user's like on a comment: liking a comment the user
// already liked removes the like. There is no payload and no ownership
// check; anyone with a valid access token may like any comment.
type Like struct {
	storage  LikeStorage
	threads  ThreadExistChecker
	comments CommentExistChecker
	jwt      TokenManager
}

type LikeStorage interface {
	Exists(commentId domain.CommentId, userId domain.UserId) (bool, error)
	Add(commentId domain.CommentId, userId domain.UserId) error
	Delete(commentId domain.CommentId, userId domain.UserId) error
}

func NewLike(storage LikeStorage, threads ThreadExistChecker, comments CommentExistChecker, jwt TokenManager) *Like {
	return &Like{storage, threads, comments, jwt}
}

func (l *Like) Toggle(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := l.threads.VerifyExistById(threadId); err != nil {
		return err
	}
	if err := l.comments.VerifyExistById(commentId); err != nil {
		return err
	}
	if err := l.jwt.VerifyAccessToken(accessToken); err != nil {
		return err
	}
	claims, err := l.jwt.DecodeAccessToken(accessToken)
	if err != nil {
		return err
	}

	liked, err := l.storage.Exists(commentId, claims.Id)
	if err != nil {
		return err
	}
	if liked {
		return l.storage.Delete(commentId, claims.Id)
	}
	return l.storage.Add(commentId, claims.Id)
}
