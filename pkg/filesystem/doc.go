// Package filesystem provides filesystem implementations for stampstore.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and afero-backed filesystems, the latter
// used for in-memory stores and tests.
package filesystem
