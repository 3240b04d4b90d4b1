package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS searches (
	id TEXT PRIMARY KEY,
	latitude TEXT NOT NULL,
	longitude TEXT NOT NULL,
	outcome TEXT NOT NULL,
	max_temperature REAL,
	color TEXT,
	error TEXT,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at);`

// SQLiteStore implements Store on the pure Go modernc.org/sqlite driver
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens or creates the database at path and applies the schema
func NewSQLiteStore(path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		logger.Warn("could not set WAL mode", "error", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply history schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "history"),
	}, nil
}

func (s *SQLiteStore) Record(ctx context.Context, r Record) error {
	r = prepare(r)

	var maxTemp sql.NullFloat64
	if r.MaxTemperature != nil {
		maxTemp = sql.NullFloat64{Float64: *r.MaxTemperature, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches(id, latitude, longitude, outcome, max_temperature, color, error, created_at) VALUES(?,?,?,?,?,?,?,?)`,
		r.ID, r.Latitude, r.Longitude, r.Outcome, maxTemp, r.Color, r.Error, r.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save search %s: %w", r.ID, err)
	}

	s.logger.Debug("search recorded", "id", r.ID, "outcome", r.Outcome)
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, latitude, longitude, outcome, max_temperature, color, error, created_at FROM searches ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]Record, 0)
	for rows.Next() {
		var (
			r       Record
			maxTemp sql.NullFloat64
			color   sql.NullString
			errMsg  sql.NullString
			ts      string
		)
		if err := rows.Scan(&r.ID, &r.Latitude, &r.Longitude, &r.Outcome, &maxTemp, &color, &errMsg, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		if maxTemp.Valid {
			v := maxTemp.Float64
			r.MaxTemperature = &v
		}
		r.Color = color.String
		r.Error = errMsg.String
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate searches: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
