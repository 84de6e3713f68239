package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tomorrownews/internal/model"
)

// ErrUnavailable means no backing persistence is configured or reachable.
// Write paths surface it to the caller; read paths degrade to an empty set.
var ErrUnavailable = errors.New("prediction store not configured")

// Filter narrows a Find call. The zero value matches everything.
type Filter struct {
	ID string
}

// Patch carries the mutable prediction fields for an update. The original
// record is otherwise immutable.
type Patch struct {
	Headline              string
	StockPhotoDescription string
	StockImageURL         string
	CameTrue              bool
}

// Store owns persisted Prediction records. Implementations are safe for
// concurrent use; each call is independently atomic and no transaction ever
// spans more than one call.
type Store interface {
	// Insert persists the prediction, assigning an ID and timestamps when
	// absent, and returns the stored record.
	Insert(ctx context.Context, p *model.Prediction) (*model.Prediction, error)
	// Find returns matching records, newest first. An unfiltered call
	// returns everything.
	Find(ctx context.Context, f Filter) ([]model.Prediction, error)
	// Update patches the record with the given ID and reports how many rows
	// changed. A missing record is 0, not an error.
	Update(ctx context.Context, id string, p Patch) (int64, error)
	// BulkDelete removes every record whose headline or serialized
	// components contain the keyword, case-insensitively. Destructive and
	// non-reversible; interactive callers gate it behind a delay.
	BulkDelete(ctx context.Context, keyword string) (int64, error)
	Ping(ctx context.Context) error
	// Persistent reports whether this backend survives beyond local
	// development (true for Postgres, false for the embedded store).
	Persistent() bool
	Close() error
}

// Config selects and parameterizes the backend. It is built once at startup
// and handed to New; nothing reads the environment after that.
type Config struct {
	// Postgres connection parameters. Host empty means "use the embedded
	// store" (local development).
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSL      bool

	// Path of the embedded SQLite database file.
	SQLitePath string
}

// New picks the backend once: Postgres when a host is configured, the
// embedded SQLite store otherwise.
func New(cfg Config, log *slog.Logger) (Store, error) {
	if log == nil {
		log = slog.Default()
	}

	if cfg.Host != "" {
		s, err := NewPostgres(cfg)
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		log.Info("using PostgreSQL prediction store", "host", cfg.Host, "database", cfg.Name)
		return s, nil
	}

	path := cfg.SQLitePath
	if path == "" {
		path = "predictions.db"
	}
	s, err := NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	log.Warn("using embedded SQLite store (local dev), set DB_HOST for PostgreSQL", "path", path)
	return s, nil
}
