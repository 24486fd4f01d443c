package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string
)
