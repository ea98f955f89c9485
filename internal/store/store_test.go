package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()

	file, err := NewFile(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "wordpot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sqlite.Close()) })

	return map[string]Store{
		DriverMemory: NewMemory(),
		DriverFile:   file,
		DriverSQLite: sqlite,
	}
}

func TestStoreGetPut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := s.Get(ctx, "s1", "state")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Put(ctx, "s1", "state", []byte{0x81, 0x01}))
			require.NoError(t, s.Put(ctx, "s2", "state", []byte("other")))

			got, err := s.Get(ctx, "s1", "state")
			require.NoError(t, err)
			assert.Equal(t, []byte{0x81, 0x01}, got)

			require.NoError(t, s.Put(ctx, "s1", "state", []byte("replaced")))
			got, err = s.Get(ctx, "s1", "state")
			require.NoError(t, err)
			assert.Equal(t, "replaced", string(got))

			got, err = s.Get(ctx, "s2", "state")
			require.NoError(t, err)
			assert.Equal(t, "other", string(got))

			_, err = s.Get(ctx, "s1", "other")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreRejectsBadNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bad := []struct{ session, key string }{
		{"", "state"},
		{"s1", ""},
		{"..", "state"},
		{"a/b", "state"},
		{"s1", `x\y`},
	}

	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, b := range bad {
				assert.Error(t, s.Put(ctx, b.session, b.key, []byte("x")), "%q/%q", b.session, b.key)
				_, err := s.Get(ctx, b.session, b.key)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotFound)
			}
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := NewMemory()
	value := []byte("abc")
	require.NoError(t, m.Put(ctx, "s", "k", value))
	value[0] = 'z'

	got, err := m.Get(ctx, "s", "k")
	require.NoError(t, err)
	got[1] = 'z'

	again, err := m.Get(ctx, "s", "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestStoreConcurrentSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var wg sync.WaitGroup
			for i := range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					id := fmt.Sprintf("session%d", i)
					for j := range 5 {
						assert.NoError(t, s.Put(ctx, id, "state", []byte{byte(j)}))
					}
				}()
			}
			wg.Wait()

			for i := range 8 {
				got, err := s.Get(ctx, fmt.Sprintf("session%d", i), "state")
				require.NoError(t, err)
				assert.Equal(t, []byte{4}, got)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordpot.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "s1", "state", []byte("blob")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "s1", "state")
	require.NoError(t, err)
	assert.Equal(t, "blob", string(got))
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		driver  string
		path    string
		wantErr bool
	}{
		{DriverMemory, "", false},
		{DriverFile, t.TempDir(), false},
		{DriverFile, "", true},
		{DriverSQLite, filepath.Join(t.TempDir(), "x.db"), false},
		{DriverSQLite, " ", true},
		{"redis", "", true},
	}

	for _, tt := range tests {
		s, err := Open(tt.driver, tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.driver)
			continue
		}
		require.NoError(t, err, tt.driver)
		assert.NoError(t, s.Close())
	}
}
