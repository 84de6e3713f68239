package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"tomorrownews/internal/model"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS predictions (
	id SERIAL PRIMARY KEY,
	_id VARCHAR(255) UNIQUE,
	components JSONB NOT NULL,
	headline TEXT NOT NULL,
	stock_photo_description TEXT,
	stock_image_url TEXT,
	predicted_date DATE,
	created_at TIMESTAMPTZ DEFAULT NOW(),
	came_true BOOLEAN DEFAULT FALSE,
	source_url TEXT
);
CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_predictions_headline ON predictions(headline);
`

// PostgresStore persists predictions in a shared relational database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(cfg Config) (*PostgresStore, error) {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	name := cfg.Name
	if name == "" {
		name = "predictions"
	}
	sslmode := "disable"
	if cfg.SSL {
		sslmode = "require"
	}

	connStr := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		cfg.Host, port, name, cfg.User, cfg.Password, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(20)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Persistent() bool { return true }

func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresStore) Insert(ctx context.Context, p *model.Prediction) (*model.Prediction, error) {
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
		) VALUES ($1, $2::jsonb, $3, $4, $5, $6, $7, $8, $9)
	`,
		stored.ID,
		components,
		stored.Headline,
		nullable(stored.StockPhotoDescription),
		nullable(stored.StockImageURL),
		stored.PredictedDate,
		stored.CreatedAt,
		stored.CameTrue,
		nullable(stored.SourceURL),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting prediction: %w", err)
	}

	return &stored, nil
}

func (s *PostgresStore) Find(ctx context.Context, f Filter) ([]model.Prediction, error) {
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
		query += " WHERE _id = $1"
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
			components []byte
			desc       sql.NullString
			imageURL   sql.NullString
			sourceURL  sql.NullString
			predicted  sql.NullTime
		)
		err := rows.Scan(&p.ID, &components, &p.Headline, &desc, &imageURL,
			&predicted, &p.CreatedAt, &p.CameTrue, &sourceURL)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(components, &p.Components); err != nil {
			return nil, fmt.Errorf("deserializing components: %w", err)
		}
		p.StockPhotoDescription = desc.String
		p.StockImageURL = imageURL.String
		p.SourceURL = sourceURL.String
		if predicted.Valid {
			p.PredictedDate = predicted.Time.Format("2006-01-02")
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, id string, patch Patch) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE predictions
		SET headline = $1, stock_photo_description = $2, stock_image_url = $3, came_true = $4
		WHERE _id = $5
	`, model.Sanitize(patch.Headline), nullable(patch.StockPhotoDescription),
		nullable(patch.StockImageURL), patch.CameTrue, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *PostgresStore) BulkDelete(ctx context.Context, keyword string) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM predictions
		WHERE headline ILIKE '%' || $1 || '%'
		   OR components::text ILIKE '%' || $1 || '%'
	`, keyword)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// prepareForInsert fills in the generated fields and returns the copy that is
// actually stored.
func prepareForInsert(p *model.Prediction) model.Prediction {
	stored := *p

	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	if stored.PredictedDate == "" {
		stored.PredictedDate = model.TomorrowDate(stored.CreatedAt)
	}
	stored.Headline = model.Sanitize(stored.Headline)
	if stored.Components == nil {
		stored.Components = []model.NewsElement{}
	}

	return stored
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
