package handler

import (
	"net/http"

	"github.com/goforum-dev/goforum/internal/api"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	auth, err := h.auth.Login(payload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	h.setAccessCookie(w, auth.AccessToken, int(h.cfg.Public.AccessTokenTTL.Seconds()))
	writeJSON(w, http.StatusCreated, api.LoginResponse{AccessToken: auth.AccessToken, RefreshToken: auth.RefreshToken})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Refresh(payload)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	h.setAccessCookie(w, accessToken, int(h.cfg.Public.AccessTokenTTL.Seconds()))
	writeJSON(w, http.StatusOK, api.RefreshResponse{AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r.Body)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.Logout(payload); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	h.setAccessCookie(w, "", -1)
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "refresh token deleted"})
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    token,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
