package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goforum-dev/goforum/internal/api"
	"github.com/goforum-dev/goforum/internal/middleware"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Add(middleware.AccessTokenFromContext(r), threadId, commentId, payload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddReplyResponse{AddedReply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")

	err := h.reply.Delete(middleware.AccessTokenFromContext(r), threadId, commentId, replyId)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "reply deleted"})
}
