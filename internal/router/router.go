package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goforum-dev/goforum/internal/middleware"
	"github.com/goforum-dev/goforum/internal/middleware/metrics"
	"github.com/goforum-dev/goforum/internal/setup"
)

// New creates and configures the chi router with all routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(chi_middleware.Compress(5))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Backend CSP: strict policy, this is a JSON API only
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(middleware.SecurityHeaders(deps.Config.Public.SecureCookies, backendCSP))

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/users", h.Register)

		r.Route("/authentications", func(r chi.Router) {
			r.Post("/", h.Login)
			r.Put("/", h.Refresh)
			r.Delete("/", h.Logout)
		})

		r.Route("/threads", func(r chi.Router) {
			r.Get("/{threadId}", h.GetThread)

			// Mutations need an access token; the use case verifies it.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAccessToken)
				r.Post("/", h.AddThread)
				r.Post("/{threadId}/comments", h.AddComment)
				r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
				r.Put("/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
				r.Post("/{threadId}/comments/{commentId}/replies", h.AddReply)
				r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
			})
		})
	})

	return r
}
