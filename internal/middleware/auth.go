package middleware

import (
	"context"
	"net/http"
	"strings"
)

// Key to store the raw access token in the request context
type key int

const accessTokenKey key = 0

// RequireAccessToken extracts the raw access token from the accessToken
// cookie or the Authorization header (Bearer scheme) and stores it in
// the request context. Verification belongs to the use case; the
// middleware only rejects requests that carry no token at all.
func RequireAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			http.Error(w, "missing access token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), accessTokenKey, tokenString)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	// Cookie first (browser clients), then Authorization header
	// (API/mobile clients).
	if accessCookie, err := r.Cookie("accessToken"); err == nil {
		return accessCookie.Value
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}

// AccessTokenFromContext returns the raw token stored by
// RequireAccessToken, or "" when the middleware did not run.
func AccessTokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(accessTokenKey).(string)
	return token
}
