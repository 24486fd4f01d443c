package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goforum-dev/goforum/internal/api"
	"github.com/goforum-dev/goforum/internal/middleware"
)

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	err := h.like.Toggle(middleware.AccessTokenFromContext(r), threadId, commentId)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "like toggled"})
}
