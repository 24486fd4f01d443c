// Package api declares the JSON response DTOs of the HTTP layer.
// Request bodies are decoded into domain.Payload so the entity
// constructors own validation; only responses get fixed shapes here.
package api

import "github.com/goforum-dev/goforum/internal/domain"

type RegisterResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AddThreadResponse struct {
	AddedThread domain.ThreadInfo `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.DetailedThread `json:"thread"`
}

type AddCommentResponse struct {
	AddedComment domain.CommentInfo `json:"addedComment"`
}

type AddReplyResponse struct {
	AddedReply domain.ReplyInfo `json:"addedReply"`
}
