package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/pulseplan/internal/planner"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot in a local SQLite database, one row per key.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens (or creates) the SQLite snapshot database at the given
// path and ensures the snapshots table exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key      TEXT PRIMARY KEY,
		data     TEXT NOT NULL,
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}

	return &SQLiteStore{db: db, key: DefaultKey}, nil
}

// Load reads the snapshot row for the store's key. No row is ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context) (*planner.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, s.key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot row: %w", err)
	}
	return Decode([]byte(data))
}

// Save upserts the snapshot row for the store's key.
func (s *SQLiteStore) Save(ctx context.Context, state *planner.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, saved_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET data = excluded.data, saved_at = CURRENT_TIMESTAMP`,
		s.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing snapshot row: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
