package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goforum-dev/goforum/internal/domain"
	internal_errors "github.com/goforum-dev/goforum/internal/errors"
)

type ThreadRepo struct {
	db *sql.DB
}

func (r *ThreadRepo) Add(data domain.ThreadCreationData) (domain.Thread, error) {
	id := "thread-" + uuid.NewString()

	var thread domain.Thread
	err := r.db.QueryRow(
		`INSERT INTO threads (id, title, body, owner)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, body, owner, date`,
		id, data.Title, data.Body, data.Owner,
	).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Owner, &thread.Date)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("insert thread: %w", err)
	}
	return thread, nil
}

func (r *ThreadRepo) VerifyExistById(id domain.ThreadId) error {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check thread: %w", err)
	}
	if !exists {
		return &internal_errors.NotFound{Resource: "thread", Id: id}
	}
	return nil
}

func (r *ThreadRepo) GetDetailedById(id domain.ThreadId) (domain.DetailedThread, error) {
	var detailed domain.DetailedThread
	var date time.Time
	err := r.db.QueryRow(
		`SELECT t.id, t.title, t.body, t.date, u.username
		 FROM threads t
		 JOIN users u ON u.id = t.owner
		 WHERE t.id = $1`,
		id,
	).Scan(&detailed.Id, &detailed.Title, &detailed.Body, &date, &detailed.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DetailedThread{}, &internal_errors.NotFound{Resource: "thread", Id: id}
	}
	if err != nil {
		return domain.DetailedThread{}, fmt.Errorf("select thread: %w", err)
	}
	detailed.Date = domain.FormatDate(date)
	return detailed, nil
}
