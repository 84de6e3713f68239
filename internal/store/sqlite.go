package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"tomorrownews/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS predictions (
	_id TEXT PRIMARY KEY,
	components TEXT NOT NULL,
	headline TEXT NOT NULL,
	stock_photo_description TEXT,
	stock_image_url TEXT,
	predicted_date TEXT,
	created_at TEXT NOT NULL,
	came_true INTEGER NOT NULL DEFAULT 0,
	source_url TEXT
);
CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_predictions_headline ON predictions(headline);
`

// created_at is stored as text and ordered lexicographically, so the format
// must be fixed width: RFC3339Nano trims trailing fractional zeros and breaks
// ordering within a second. Parsing back with RFC3339Nano still works.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore is the embedded fallback used in local development when no
// Postgres host is configured. Same contract, single local file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// The embedded driver serializes writers; one connection avoids
	// SQLITE_BUSY under concurrent inserts.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Persistent() bool { return false }

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Insert(ctx context.Context, p *model.Prediction) (*model.Prediction, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	stored := prepareForInsert(p)

	components, err := json.Marshal(stored.Components)
	if err != nil {
		return nil, fmt.Errorf("serializing components: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO predictions (
			_id, components, headline, stock_photo_description, stock_image_url,
			predicted_date, created_at, came_true, source_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		stored.ID,
		string(components),
		stored.Headline,
		stored.StockPhotoDescription,
		stored.StockImageURL,
		stored.PredictedDate,
		stored.CreatedAt.UTC().Format(sqliteTimeFormat),
		stored.CameTrue,
		stored.SourceURL,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting prediction: %w", err)
	}

	return &stored, nil
}

func (s *SQLiteStore) Find(ctx context.Context, f Filter) ([]model.Prediction, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	query := `
		SELECT _id, components, headline, stock_photo_description, stock_image_url,
			predicted_date, created_at, came_true, source_url
		FROM predictions
	`
	var args []any
	if f.ID != "" {
		query += " WHERE _id = ?"
		args = append(args, f.ID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Prediction
	for rows.Next() {
		var (
			p          model.Prediction
			components string
			createdAt  string
		)
		err := rows.Scan(&p.ID, &components, &p.Headline, &p.StockPhotoDescription,
			&p.StockImageURL, &p.PredictedDate, &createdAt, &p.CameTrue, &p.SourceURL)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(components), &p.Components); err != nil {
			return nil, fmt.Errorf("deserializing components: %w", err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) Update(ctx context.Context, id string, patch Patch) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE predictions
		SET headline = ?, stock_photo_description = ?, stock_image_url = ?, came_true = ?
		WHERE _id = ?
	`, model.Sanitize(patch.Headline), patch.StockPhotoDescription,
		patch.StockImageURL, patch.CameTrue, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) BulkDelete(ctx context.Context, keyword string) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM predictions
		WHERE LOWER(headline) LIKE '%' || LOWER(?) || '%'
		   OR LOWER(components) LIKE '%' || LOWER(?) || '%'
	`, keyword, keyword)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
