package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stampstore/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fs types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))
	// idempotent
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	_, err = fs.ReadFile(subDir)
	assert.Error(t, err, "reading a directory must fail")

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.RemoveAll(filepath.Join(root, "sub")))
	entries, err = fs.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)
	exerciseFS(t, fs, t.TempDir())
}

func TestNewMemory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/store", 0755))
	exerciseFS(t, fs, "/store")
}

func TestNewBasePath(t *testing.T) {
	dir := t.TempDir()
	fs := NewBasePath(dir)
	require.NoError(t, fs.MkdirAll("/", 0755))
	require.NoError(t, fs.WriteFile("/a.txt", []byte("x"), 0644))

	_, err := os.Stat(filepath.Join(dir, "a.txt"))
	assert.NoError(t, err)
}

func TestFaultyFS(t *testing.T) {
	inner := NewAferoFS(afero.NewMemMapFs())
	fs := NewFaulty(inner)
	injected := errors.New("disk full")

	fs.SetError(OpWriteFile, "/root/a", injected)

	err := fs.WriteFile("/root/a", []byte("x"), 0644)
	assert.ErrorIs(t, err, injected)

	require.NoError(t, fs.MkdirAll("/root", 0755))
	require.NoError(t, fs.WriteFile("/root/b", []byte("x"), 0644))

	assert.Equal(t, 2, fs.Calls(OpWriteFile))
	assert.Equal(t, 1, fs.Calls(OpMkdirAll))
	assert.Equal(t, 3, fs.TotalCalls())

	fs.ClearErrors()
	require.NoError(t, fs.WriteFile("/root/a", []byte("x"), 0644))
}
