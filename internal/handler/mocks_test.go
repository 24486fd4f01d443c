package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/goforum-dev/goforum/internal/config"
	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/middleware"
)

// Stub services with overridable behavior, same shape as the service
// layer mocks.

type StubUserService struct {
	register func(payload domain.Payload) (domain.RegisteredUser, error)
}

func (s *StubUserService) Register(payload domain.Payload) (domain.RegisteredUser, error) {
	if s.register != nil {
		return s.register(payload)
	}
	return domain.RegisteredUser{Id: "user-123", Username: "user123", Fullname: "User"}, nil
}

type StubAuthService struct {
	login   func(payload domain.Payload) (domain.NewAuthentication, error)
	logout  func(payload domain.Payload) error
	refresh func(payload domain.Payload) (string, error)
}

func (s *StubAuthService) Login(payload domain.Payload) (domain.NewAuthentication, error) {
	if s.login != nil {
		return s.login(payload)
	}
	return domain.NewAuthentication{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
}

func (s *StubAuthService) Logout(payload domain.Payload) error {
	if s.logout != nil {
		return s.logout(payload)
	}
	return nil
}

func (s *StubAuthService) Refresh(payload domain.Payload) (string, error) {
	if s.refresh != nil {
		return s.refresh(payload)
	}
	return "new-access-token", nil
}

type StubThreadService struct {
	add             func(accessToken string, payload domain.Payload) (domain.ThreadInfo, error)
	getDetailedById func(id domain.ThreadId) (domain.DetailedThread, error)
}

func (s *StubThreadService) Add(accessToken string, payload domain.Payload) (domain.ThreadInfo, error) {
	if s.add != nil {
		return s.add(accessToken, payload)
	}
	return domain.ThreadInfo{Id: "thread-123", Title: "a thread", Owner: "user-123"}, nil
}

func (s *StubThreadService) GetDetailedById(id domain.ThreadId) (domain.DetailedThread, error) {
	if s.getDetailedById != nil {
		return s.getDetailedById(id)
	}
	return domain.DetailedThread{Id: id, Title: "a thread"}, nil
}

type StubCommentService struct {
	add    func(accessToken string, threadId domain.ThreadId, payload domain.Payload) (domain.CommentInfo, error)
	delete func(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error
}

func (s *StubCommentService) Add(accessToken string, threadId domain.ThreadId, payload domain.Payload) (domain.CommentInfo, error) {
	if s.add != nil {
		return s.add(accessToken, threadId, payload)
	}
	return domain.CommentInfo{Id: "comment-123", Content: "a comment", Owner: "user-123"}, nil
}

func (s *StubCommentService) Delete(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error {
	if s.delete != nil {
		return s.delete(accessToken, threadId, commentId)
	}
	return nil
}

type StubReplyService struct {
	add    func(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, payload domain.Payload) (domain.ReplyInfo, error)
	delete func(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
}

func (s *StubReplyService) Add(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, payload domain.Payload) (domain.ReplyInfo, error) {
	if s.add != nil {
		return s.add(accessToken, threadId, commentId, payload)
	}
	return domain.ReplyInfo{Id: "reply-123", Content: "a reply", Owner: "user-123"}, nil
}

func (s *StubReplyService) Delete(accessToken string, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if s.delete != nil {
		return s.delete(accessToken, threadId, commentId, replyId)
	}
	return nil
}

type StubLikeService struct {
	toggle func(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error
}

func (s *StubLikeService) Toggle(accessToken string, threadId domain.ThreadId, commentId domain.CommentId) error {
	if s.toggle != nil {
		return s.toggle(accessToken, threadId, commentId)
	}
	return nil
}

type StubHealthChecker struct {
	ping func(ctx context.Context) error
}

func (s *StubHealthChecker) Ping(ctx context.Context) error {
	if s.ping != nil {
		return s.ping(ctx)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{AccessTokenTTL: 15 * time.Minute}}
}

// newTestRouter mounts the handler on the same route table the real
// router uses, minus the ambient middleware.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/users", h.Register)
		r.Route("/authentications", func(r chi.Router) {
			r.Post("/", h.Login)
			r.Put("/", h.Refresh)
			r.Delete("/", h.Logout)
		})
		r.Route("/threads", func(r chi.Router) {
			r.Get("/{threadId}", h.GetThread)
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

func newTestHandler() (*Handler, *StubUserService, *StubAuthService, *StubThreadService, *StubCommentService, *StubReplyService, *StubLikeService, *StubHealthChecker) {
	user := &StubUserService{}
	auth := &StubAuthService{}
	thread := &StubThreadService{}
	comment := &StubCommentService{}
	reply := &StubReplyService{}
	like := &StubLikeService{}
	health := &StubHealthChecker{}
	h := New(user, auth, thread, comment, reply, like, health, testConfig())
	return h, user, auth, thread, comment, reply, like, health
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
