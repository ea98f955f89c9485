package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/wordpot/internal/fileutil"
)

// File stores each blob as dir/<session>/<key>, replaced atomically on every Put.
type File struct {
	dir string
}

// NewFile returns a file store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return &File{dir: filepath.Clean(dir)}, nil
}

func (f *File) path(session, key string) string {
	return filepath.Join(f.dir, session, key)
}

func (f *File) Get(ctx context.Context, session, key string) ([]byte, error) {
	if err := validate(session, key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok, err := fileutil.ReadFileIfExists(f.path(session, key))
	if err != nil {
		return nil, fmt.Errorf("store: read %s/%s: %w", session, key, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (f *File) Put(ctx context.Context, session, key string, value []byte) error {
	if err := validate(session, key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(f.path(session, key), value, 0o644); err != nil {
		return fmt.Errorf("store: write %s/%s: %w", session, key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
