package filesystem

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/stampstore/pkg/types"
)

// Op names a filesystem operation for error injection.
type Op string

const (
	OpStat      Op = "stat"
	OpReadFile  Op = "readfile"
	OpWriteFile Op = "writefile"
	OpMkdirAll  Op = "mkdirall"
	OpReadDir   Op = "readdir"
	OpRemove    Op = "remove"
	OpRemoveAll Op = "removeall"
)

type fault struct {
	op   Op
	path string
}

// FaultyFS wraps another FS and fails chosen operations on chosen paths.
// It also counts calls per operation so tests can assert that nothing
// touched the filesystem.
type FaultyFS struct {
	inner types.FS

	mu     sync.Mutex
	faults map[fault]error
	calls  map[Op]int
}

// NewFaulty wraps inner with error injection
func NewFaulty(inner types.FS) *FaultyFS {
	return &FaultyFS{
		inner:  inner,
		faults: make(map[fault]error),
		calls:  make(map[Op]int),
	}
}

// SetError makes op fail with err for path
func (f *FaultyFS) SetError(op Op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[fault{op: op, path: filepath.Clean(path)}] = err
}

// ClearErrors removes all error injections
func (f *FaultyFS) ClearErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = make(map[fault]error)
}

// Calls returns how many times op was invoked
func (f *FaultyFS) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// TotalCalls returns the number of operations invoked across all kinds
func (f *FaultyFS) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *FaultyFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.faults[fault{op: op, path: filepath.Clean(path)}]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.inner.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.inner.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile, name); err != nil {
		return err
	}
	return f.inner.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.inner.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.inner.ReadDir(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.inner.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check(OpRemoveAll, path); err != nil {
		return err
	}
	return f.inner.RemoveAll(path)
}
