package saveslot

import (
	"context"
	"database/sql"
	"time"

	// registers the pure-Go "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
)

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS save_slots (
	slot_key   TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

	sqliteSelect = `SELECT payload, updated_at FROM save_slots WHERE slot_key = ?`

	sqliteUpsert = `INSERT INTO save_slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
)

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.DB == nil {
		return errors.InvalidArgument("database is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLite opens the database file at path with a single writer connection
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

// NewSQLite creates a save repository backed by SQLite, creating the table if needed
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if _, err := cfg.DB.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create save_slots table")
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*sqliteRepository)(nil)

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	var (
		payload []byte
		millis  int64
	)
	err := r.db.QueryRowContext(ctx, sqliteSelect, input.Key).Scan(&payload, &millis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("save not found")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save from sqlite")
	}

	return &GetOutput{
		Payload:   payload,
		UpdatedAt: time.UnixMilli(millis).UTC(),
	}, nil
}

func (r *sqliteRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if _, err := r.db.ExecContext(ctx, sqliteUpsert, input.Key, input.Payload, now.UnixMilli()); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to write save to sqlite")
	}

	return &SetOutput{UpdatedAt: now}, nil
}
