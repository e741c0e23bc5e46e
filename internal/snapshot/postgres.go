package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/pulseplan/internal/planner"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the snapshot in a Postgres table, for deployments that
// already run a database and want the planner state backed up with it.
type PostgresStore struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgres connects a pool and verifies the connection.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{pool: pool, key: DefaultKey}, nil
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Load reads the snapshot row for the store's key. No row is ErrNotFound.
func (s *PostgresStore) Load(ctx context.Context) (*planner.State, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM snapshots WHERE key = $1`, s.key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot row: %w", err)
	}
	return Decode(data)
}

// Save upserts the snapshot row for the store's key.
func (s *PostgresStore) Save(ctx context.Context, state *planner.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO snapshots (key, data, saved_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, saved_at = NOW()`,
		s.key, data,
	)
	if err != nil {
		return fmt.Errorf("writing snapshot row: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
