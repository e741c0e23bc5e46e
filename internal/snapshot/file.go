package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/pulseplan/internal/planner"
)

// FileStore persists the snapshot as a single JSON file. Saves go through a
// temp file and rename so a crash mid-write never leaves a torn document.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path. Parent
// directories are created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot file. A missing file is ErrNotFound.
func (s *FileStore) Load(ctx context.Context) (*planner.State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	return Decode(data)
}

// Save writes the state atomically to the snapshot file.
func (s *FileStore) Save(ctx context.Context, state *planner.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
