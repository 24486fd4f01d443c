package setup

import (
	"github.com/goforum-dev/goforum/internal/config"
	"github.com/goforum-dev/goforum/internal/handler"
	"github.com/goforum-dev/goforum/internal/jwt"
	"github.com/goforum-dev/goforum/internal/security"
	"github.com/goforum-dev/goforum/internal/service"
	"github.com/goforum-dev/goforum/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes everything the router needs.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.Public.AccessTokenTTL, cfg.Public.RefreshTokenTTL)
	hash := security.NewBcrypt(cfg.Private.BcryptCost)

	user := service.NewUser(storage.Users, hash)
	auth := service.NewAuth(storage.Users, storage.Tokens, hash, tokens)
	thread := service.NewThread(storage.Threads, storage.Comments, storage.Replies, tokens)
	comment := service.NewComment(storage.Comments, storage.Threads, tokens)
	reply := service.NewReply(storage.Replies, storage.Threads, storage.Comments, tokens)
	like := service.NewLike(storage.Likes, storage.Threads, storage.Comments, tokens)

	h := handler.New(user, auth, thread, comment, reply, like, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
