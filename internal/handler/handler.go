package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/goforum-dev/goforum/internal/config"
	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/goforum-dev/goforum/internal/logger"
	"github.com/goforum-dev/goforum/internal/service"
)

// HealthChecker is what the readiness probe needs from storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user    service.UserService
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.LikeService
	health  HealthChecker
	cfg     *config.Config
}

func New(user service.UserService, auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService, like service.LikeService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{user, auth, thread, comment, reply, like, health, cfg}
}

func writeErrorAndStatusCode(w http.ResponseWriter, err error) {
	code := internal_errors.StatusCode(err)
	if code == http.StatusInternalServerError {
		// Driver and wrapping details stay in the log, not the response.
		logger.Log.Error("request failed", "error", err)
		http.Error(w, "internal server error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// decodePayload reads the request body as a JSON object. The entity
// constructors own field validation, so anything object-shaped passes
// through untouched.
func decodePayload(r io.ReadCloser) (domain.Payload, error) {
	var payload domain.Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, &internal_errors.BadRequest{Message: "body is invalid json"}
	}
	return payload, nil
}
