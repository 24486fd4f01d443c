// Package pg implements the storage interfaces declared by the service
// layer on top of PostgreSQL. Each resource gets its own repository
// sharing one connection pool.
package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/goforum-dev/goforum/internal/config"
	"github.com/goforum-dev/goforum/internal/logger"
)

// unique_violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const pqUniqueViolation = "23505"

type Storage struct {
	db *sql.DB

	Users    *UserRepo
	Threads  *ThreadRepo
	Comments *CommentRepo
	Replies  *ReplyRepo
	Likes    *LikeRepo
	Tokens   *TokenRepo
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewFromDB(db), nil
}

// NewFromDB wraps an already established connection; used by tests that
// manage the database lifecycle themselves.
func NewFromDB(db *sql.DB) *Storage {
	return &Storage{
		db:       db,
		Users:    &UserRepo{db},
		Threads:  &ThreadRepo{db},
		Comments: &CommentRepo{db},
		Replies:  &ReplyRepo{db},
		Likes:    &LikeRepo{db},
		Tokens:   &TokenRepo{db},
	}
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable; used by the readiness
// probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
