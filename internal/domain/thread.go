package domain

import (
	"time"

	"github.com/goforum-dev/goforum/internal/errors"
)

// DateFormat is the fixed textual timestamp format used in detailed
// projections (ISO-8601 with milliseconds, always UTC).
const DateFormat = "2006-01-02T15:04:05.000Z"

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

type Thread struct {
	Id    ThreadId
	Title string
	Body  string
	Owner UserId
	Date  time.Time
}

// ThreadCreationData is a validated thread-creation request. Owner is
// the identity decoded from the access token; a client-supplied owner
// field in the payload is ignored.
type ThreadCreationData struct {
	Title string
	Body  string
	Owner UserId
}

func NewThreadCreationData(p Payload, owner UserId) (ThreadCreationData, error) {
	const entity = "thread"

	if owner == "" {
		return ThreadCreationData{}, &errors.IncompletePayload{Entity: entity, Field: "owner"}
	}
	if err := requireAll(entity, p, "threadTitle", "threadBody"); err != nil {
		return ThreadCreationData{}, err
	}

	title, err := stringField(entity, p, "threadTitle")
	if err != nil {
		return ThreadCreationData{}, err
	}
	body, err := stringField(entity, p, "threadBody")
	if err != nil {
		return ThreadCreationData{}, err
	}

	return ThreadCreationData{Title: title, Body: body, Owner: owner}, nil
}

// ThreadInfo is the projection returned after a thread is created.
type ThreadInfo struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// DetailedThread is the composed read model for a single thread: the
// thread itself plus its comments ordered oldest first, each comment
// carrying its replies ordered the same way.
type DetailedThread struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"` // DateFormat
	Username Username        `json:"username"`
	Comments []ThreadComment `json:"comments"`
}
