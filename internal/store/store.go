// Package store persists opaque session blobs. A session's blobs are addressed by the
// session id and a key; the engine keeps its whole state under a single key.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: not found")

// Store is a blob store. Implementations are safe for concurrent use across sessions.
type Store interface {
	Get(ctx context.Context, session, key string) ([]byte, error)
	Put(ctx context.Context, session, key string, value []byte) error
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open returns the store for driver. path is a directory for the file driver and a
// database file for sqlite; the memory driver ignores it.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(path)
	case DriverSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}
}

func validName(kind, name string) error {
	switch {
	case name == "":
		return fmt.Errorf("store: %s is required", kind)
	case name == "." || name == "..", strings.ContainsAny(name, `/\`):
		return fmt.Errorf("store: invalid %s %q", kind, name)
	}
	return nil
}

func validate(session, key string) error {
	if err := validName("session", session); err != nil {
		return err
	}
	return validName("key", key)
}
