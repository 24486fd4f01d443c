package handler

import (
	"net/http"

	"github.com/goforum-dev/goforum/internal/api"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.Register(payload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.RegisterResponse{AddedUser: user})
}
