package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goforum-dev/goforum/internal/api"
	"github.com/goforum-dev/goforum/internal/middleware"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Add(middleware.AccessTokenFromContext(r), threadId, payload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddCommentResponse{AddedComment: comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	err := h.comment.Delete(middleware.AccessTokenFromContext(r), threadId, commentId)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "comment deleted"})
}
