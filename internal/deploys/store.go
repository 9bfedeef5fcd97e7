package deploys

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Store loads and saves raw deployment records by location.
type Store interface {
	Load(ctx context.Context, location string) ([]byte, error)
	Save(ctx context.Context, location string, data []byte) error
}

// FileStore keeps records on the local filesystem.
type FileStore struct{}

func (FileStore) Load(_ context.Context, location string) ([]byte, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, location)
		}
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

func (FileStore) Save(_ context.Context, location string, data []byte) error {
	if err := os.WriteFile(location, data, 0o644); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, location)
		}
		return fmt.Errorf("write %s: %w", location, err)
	}
	return nil
}
