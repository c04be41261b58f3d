package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stampstore/pkg/filesystem"
	"github.com/arthur-debert/stampstore/pkg/key"
	"github.com/arthur-debert/stampstore/pkg/store"
	"github.com/arthur-debert/stampstore/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// String names the environment type, for subtest names
func (e EnvType) String() string {
	switch e {
	case EnvMemoryOnly:
		return "memory"
	case EnvIsolated:
		return "os"
	default:
		return "unknown"
	}
}

// AllEnvTypes lists every environment type
func AllEnvTypes() []EnvType {
	return []EnvType{EnvIsolated, EnvMemoryOnly}
}

// TestEnvironment provides a storage root with a store over it
type TestEnvironment struct {
	Root   string
	FS     types.FS
	Faults *filesystem.FaultyFS
	Store  *store.Store
	Type   EnvType

	t *testing.T
}

// NewTestEnvironment creates the root and a store over it. The root exists
// before the store sees any filesystem call, so Faults counts start at zero.
func NewTestEnvironment(t *testing.T, envType EnvType, opts ...store.Option) *TestEnvironment {
	t.Helper()

	var (
		inner types.FS
		root  string
	)
	switch envType {
	case EnvIsolated:
		inner = filesystem.NewOS()
		root = filepath.Join(t.TempDir(), "storage")
	default:
		inner = filesystem.NewMemory()
		root = "/virtual/storage"
	}

	if err := inner.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create storage root: %v", err)
	}

	faults := filesystem.NewFaulty(inner)
	return &TestEnvironment{
		Root:   root,
		FS:     faults,
		Faults: faults,
		Store:  store.New(faults, root, opts...),
		Type:   envType,
		t:      t,
	}
}

// ForEachEnv runs fn in a subtest per environment type
func ForEachEnv(t *testing.T, fn func(t *testing.T, env *TestEnvironment), opts ...store.Option) {
	t.Helper()
	for _, envType := range AllEnvTypes() {
		t.Run(envType.String(), func(t *testing.T) {
			fn(t, NewTestEnvironment(t, envType, opts...))
		})
	}
}

// RecordPath returns where the record for raw lives
func (env *TestEnvironment) RecordPath(raw string) string {
	env.t.Helper()
	k, err := key.Parse(raw)
	if err != nil {
		env.t.Fatalf("Invalid key %q: %v", raw, err)
	}
	return filepath.Join(env.Root, k.Directory, k.FileName)
}

// DirPath returns the directory holding the record for raw
func (env *TestEnvironment) DirPath(raw string) string {
	env.t.Helper()
	return filepath.Dir(env.RecordPath(raw))
}

// WriteRaw places data at the record path for raw without going through the
// store
func (env *TestEnvironment) WriteRaw(raw string, data []byte) {
	env.t.Helper()
	if err := env.FS.MkdirAll(env.DirPath(raw), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", raw, err)
	}
	if err := env.FS.WriteFile(env.RecordPath(raw), data, 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", raw, err)
	}
}

// Exists reports whether path exists on the environment's filesystem
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}
