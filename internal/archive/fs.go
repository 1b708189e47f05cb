package archive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FSStore keeps reports on the local filesystem, for single-node setups.
type FSStore struct {
	dir string
}

func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("missing archive directory")
	}
	if err := os.MkdirAll(filepath.Join(dir, "reports"), 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

func (s *FSStore) Save(_ context.Context, id string, data []byte) error {
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return fmt.Errorf("save report %s: %w", id, err)
	}
	return nil
}

func (s *FSStore) Load(_ context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FSStore) path(id string) string {
	return filepath.Join(s.dir, "reports", id+".json")
}
