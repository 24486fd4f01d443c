package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goforum-dev/goforum/internal/api"
	"github.com/goforum-dev/goforum/internal/middleware"
)

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Add(middleware.AccessTokenFromContext(r), payload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddThreadResponse{AddedThread: thread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.GetDetailedById(threadId)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
