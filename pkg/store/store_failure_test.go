// pkg/store/store_failure_test.go
// TEST TYPE: Store Tests
// DEPENDENCIES: afero in-memory filesystem wrapped with error injection
// PURPOSE: Test that filesystem failures surface as the right error kind

package store_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/filesystem"
	"github.com/arthur-debert/stampstore/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/storage"

var errInjected = stderrors.New("injected failure")

func setupFaulty(t *testing.T) (*filesystem.FaultyFS, *store.Store) {
	t.Helper()
	fs := filesystem.NewFaulty(filesystem.NewMemory())
	require.NoError(t, fs.MkdirAll(root, 0755))
	return fs, store.New(fs, root)
}

func TestWrite_Failures(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		op   filesystem.Op
		path string
	}{
		{name: "mkdir_fails", op: filesystem.OpMkdirAll, path: filepath.Join(root, "20241120")},
		{name: "write_fails", op: filesystem.OpWriteFile, path: filepath.Join(root, "20241120", "093015")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, s := setupFaulty(t)
			fs.SetError(tt.op, tt.path, errInjected)

			err := s.Write(ctx, "20241120093015", note{Note: "a"})
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrWriteKind)
			assert.ErrorIs(t, err, errInjected)
			assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestRead_Failures(t *testing.T) {
	ctx := context.Background()
	filePath := filepath.Join(root, "20241120", "093015")

	for _, op := range []filesystem.Op{filesystem.OpStat, filesystem.OpReadFile} {
		t.Run(string(op), func(t *testing.T) {
			fs, s := setupFaulty(t)
			require.NoError(t, s.Write(ctx, "20241120093015", note{Note: "a"}))
			fs.SetError(op, filePath, errInjected)

			var out note
			err := s.Read(ctx, "20241120093015", &out)
			assert.ErrorIs(t, err, errors.ErrReadKind)
			assert.ErrorIs(t, err, errInjected)
		})
	}

	t.Run("exists_stat_fails", func(t *testing.T) {
		fs, s := setupFaulty(t)
		fs.SetError(filesystem.OpStat, filePath, errInjected)
		_, err := s.Exists(ctx, "20241120093015")
		assert.ErrorIs(t, err, errors.ErrReadKind)
	})
}

func TestDelete_RemoveFails(t *testing.T) {
	ctx := context.Background()
	fs, s := setupFaulty(t)
	require.NoError(t, s.Write(ctx, "20241120093015", note{Note: "a"}))

	fs.SetError(filesystem.OpRemove, filepath.Join(root, "20241120", "093015"), errInjected)

	err := s.Delete(ctx, "20241120093015")
	assert.ErrorIs(t, err, errors.ErrDeleteKind)
	assert.Nil(t, errors.GetErrorDetails(err)[store.DetailFileRemoved])

	fs.ClearErrors()
	ok, err := s.Exists(ctx, "20241120093015")
	require.NoError(t, err)
	assert.True(t, ok, "record must still be present")
}

func TestDelete_PruneFailsLoud(t *testing.T) {
	ctx := context.Background()
	dayDir := filepath.Join(root, "20241120")

	for _, op := range []filesystem.Op{filesystem.OpReadDir, filesystem.OpRemove} {
		t.Run(string(op), func(t *testing.T) {
			fs, s := setupFaulty(t)
			require.NoError(t, s.Write(ctx, "20241120093015", note{Note: "a"}))
			fs.SetError(op, dayDir, errInjected)

			err := s.Delete(ctx, "20241120093015")
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrDeleteKind)
			assert.ErrorIs(t, err, errInjected)
			assert.Equal(t, true, errors.GetErrorDetails(err)[store.DetailFileRemoved])

			fs.ClearErrors()
			ok, err := s.Exists(ctx, "20241120093015")
			require.NoError(t, err)
			assert.False(t, ok, "the record is gone even though Delete failed")

			// a retry finds nothing to delete and succeeds
			assert.NoError(t, s.Delete(ctx, "20241120093015"))
		})
	}
}

func TestDeleteAll_ListFails(t *testing.T) {
	fs, s := setupFaulty(t)
	fs.SetError(filesystem.OpReadDir, root, errInjected)

	err := s.DeleteAll(context.Background())
	assert.ErrorIs(t, err, errors.ErrDeleteKind)
	assert.ErrorIs(t, err, errInjected)
}

func TestDeleteAll_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	fs, s := setupFaulty(t)
	keys := []string{"20241120093015", "20241121093015", "20241122093015"}
	for _, k := range keys {
		require.NoError(t, s.Write(ctx, k, note{Note: k}))
	}

	entries, err := fs.ReadDir(root)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	require.Len(t, names, 3)

	// listings come back sorted; fail on the second directory
	failing := names[1]
	fs.SetError(filesystem.OpRemoveAll, filepath.Join(root, failing), errInjected)

	err = s.DeleteAll(ctx)
	assert.ErrorIs(t, err, errors.ErrDeleteKind)

	fs.ClearErrors()
	ok, err := s.Exists(ctx, failing+"093015")
	require.NoError(t, err)
	assert.True(t, ok, "the entry that failed to remove is still there")

	require.NoError(t, s.DeleteAll(ctx))
	for _, k := range keys {
		ok, err := s.Exists(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}
