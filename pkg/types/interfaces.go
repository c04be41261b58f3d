package types

import "io/fs"

// FS is the filesystem surface the store needs. Implementations exist for
// the real OS and for afero-backed filesystems.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}

// Pather provides the directories stampstore works with
type Pather interface {
	// StorageRoot returns the root directory for stored records
	StorageRoot() string

	// ConfigDir returns the XDG config directory for stampstore
	ConfigDir() string

	// StateDir returns the XDG state directory for stampstore
	StateDir() string
}
