package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stampstore/pkg/codec"
	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/key"
	"github.com/arthur-debert/stampstore/pkg/types"
	"github.com/rs/zerolog"
)

const (
	defaultDirPerm  fs.FileMode = 0755
	defaultFilePerm fs.FileMode = 0644
	defaultWorkers              = 4

	// DetailFileRemoved is set on a DELETE error when the record file was
	// removed before directory pruning failed.
	DetailFileRemoved = "file_removed"
)

// Store is the timestamp-keyed record store
type Store struct {
	fs       types.FS
	root     string
	codec    codec.Codec
	dirPerm  fs.FileMode
	filePerm fs.FileMode
	workers  int
	logger   zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithCodec sets the codec records are encoded with. Defaults to JSON.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithPermissions sets the modes used for new directories and files
func WithPermissions(dirPerm, filePerm fs.FileMode) Option {
	return func(s *Store) {
		if dirPerm != 0 {
			s.dirPerm = dirPerm
		}
		if filePerm != 0 {
			s.filePerm = filePerm
		}
	}
}

// WithLogger sets the logger for debug and trace events. The store never
// logs failures; it returns them.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithWorkers bounds the goroutines ReadMany uses
func WithWorkers(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New creates a store rooted at root on fs. The root is not created here;
// writes create the directories they need below it.
func New(fs types.FS, root string, opts ...Option) *Store {
	s := &Store{
		fs:       fs,
		root:     filepath.Clean(root),
		codec:    codec.JSON,
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
		workers:  defaultWorkers,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the storage root
func (s *Store) Root() string {
	return s.root
}

// Codec returns the codec records are encoded with
func (s *Store) Codec() codec.Codec {
	return s.codec
}

// ParseKey splits raw into its directory and file-name components
func (s *Store) ParseKey(raw string) (directory, fileName string, err error) {
	k, err := key.Parse(raw)
	if err != nil {
		return "", "", err
	}
	return k.Directory, k.FileName, nil
}

// resolve parses raw and returns the directory and file paths it maps to
func (s *Store) resolve(raw string) (dirPath, filePath string, err error) {
	k, err := key.Parse(raw)
	if err != nil {
		return "", "", err
	}
	dirPath = filepath.Join(s.root, k.Directory)
	return dirPath, filepath.Join(dirPath, k.FileName), nil
}

// Path returns the file a key maps to, without touching the filesystem
func (s *Store) Path(raw string) (string, error) {
	_, p, err := s.resolve(raw)
	return p, err
}

// Write encodes record and stores it under raw, replacing any existing record.
func (s *Store) Write(ctx context.Context, raw string, record any) error {
	dirPath, filePath, err := s.resolve(raw)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.Encode(record)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "failed to encode record %s", raw).
			WithDetail("codec", s.codec.Name())
	}

	if err := s.ensureDir(dirPath); err != nil {
		return err
	}

	if err := s.fs.WriteFile(filePath, data, s.filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "failed to write record %s", raw).
			WithDetail("path", filePath)
	}

	s.logger.Trace().Str("key", raw).Str("path", filePath).Int("bytes", len(data)).Msg("Record written")
	return nil
}

func (s *Store) ensureDir(dirPath string) error {
	if info, err := s.fs.Stat(dirPath); err == nil && info.IsDir() {
		return nil
	}
	if err := s.fs.MkdirAll(dirPath, s.dirPerm); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to create record directory").
			WithDetail("path", dirPath)
	}
	s.logger.Debug().Str("path", dirPath).Msg("Created record directory")
	return nil
}

// ReadRaw returns the stored bytes for raw without decoding them
func (s *Store) ReadRaw(ctx context.Context, raw string) ([]byte, error) {
	_, filePath, err := s.resolve(raw)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrRead, "record %s not found", raw).
				WithDetail("path", filePath)
		}
		return nil, errors.Wrapf(err, errors.ErrRead, "failed to stat record %s", raw).
			WithDetail("path", filePath)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrRead, "record %s is a directory", raw).
			WithDetail("path", filePath)
	}

	data, err := s.fs.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRead, "failed to read record %s", raw).
			WithDetail("path", filePath)
	}
	return data, nil
}

// Read loads the record stored under raw into target, which must be a
// pointer the codec can decode into.
func (s *Store) Read(ctx context.Context, raw string, target any) error {
	data, err := s.ReadRaw(ctx, raw)
	if err != nil {
		return err
	}
	if err := s.codec.Decode(data, target); err != nil {
		return readDecodeError(err, raw, s.codec.Name())
	}
	s.logger.Trace().Str("key", raw).Int("bytes", len(data)).Msg("Record read")
	return nil
}

func readDecodeError(err error, raw, codecName string) error {
	return errors.Wrapf(err, errors.ErrRead, "failed to decode record %s", raw).
		WithDetail("codec", codecName)
}

// ReadAs loads the record stored under raw as a T
func ReadAs[T any](ctx context.Context, s *Store, raw string) (T, error) {
	var out T
	if err := s.Read(ctx, raw, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Exists reports whether a record is stored under raw
func (s *Store) Exists(ctx context.Context, raw string) (bool, error) {
	_, filePath, err := s.resolve(raw)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := s.fs.Stat(filePath)
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrRead, "failed to stat record %s", raw).
		WithDetail("path", filePath)
}

// Delete removes the record stored under raw. Deleting a missing record
// succeeds. When the record was the last in its directory the directory is
// removed too.
func (s *Store) Delete(ctx context.Context, raw string) error {
	dirPath, filePath, err := s.resolve(raw)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.fs.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrDelete, "failed to stat record %s", raw).
			WithDetail("path", filePath)
	}

	if err := s.fs.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrDelete, "failed to remove record %s", raw).
			WithDetail("path", filePath)
	}
	s.logger.Trace().Str("key", raw).Str("path", filePath).Msg("Record removed")

	return s.pruneDir(raw, dirPath)
}

// pruneDir removes dirPath if it holds no entries
func (s *Store) pruneDir(raw, dirPath string) error {
	entries, err := s.fs.ReadDir(dirPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDelete, "record %s removed but its directory could not be listed", raw).
			WithDetail("path", dirPath).
			WithDetail(DetailFileRemoved, true)
	}
	if len(entries) > 0 {
		return nil
	}

	if err := s.fs.Remove(dirPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrDelete, "record %s removed but its empty directory could not be removed", raw).
			WithDetail("path", dirPath).
			WithDetail(DetailFileRemoved, true)
	}
	s.logger.Debug().Str("path", dirPath).Msg("Removed empty record directory")
	return nil
}

// DeleteAll removes every non-hidden entry directly under the root. The root
// itself stays, and a root that was never created counts as empty. Removal
// stops at the first failure; entries already removed stay removed.
func (s *Store) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrDelete, "failed to list storage root").
			WithDetail("path", s.root)
	}

	removed := 0
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		p := filepath.Join(s.root, entry.Name())
		if err := s.fs.RemoveAll(p); err != nil {
			return errors.Wrapf(err, errors.ErrDelete, "failed to remove %s", entry.Name()).
				WithDetail("path", p).
				WithDetail("removed", removed)
		}
		removed++
	}

	s.logger.Debug().Str("root", s.root).Int("removed", removed).Msg("Cleared storage root")
	return nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
