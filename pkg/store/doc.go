// Package store persists records on the filesystem, one file per 14-character
// key, laid out as root/<first 8 chars>/<last 6 chars>.
//
// Every operation is a self-contained round trip to the filesystem: there is
// no cache, no locking and no retry. Concurrent writers to the same key race
// at the filesystem level and the last write wins. Callers needing atomicity
// across keys or operations must serialize externally.
//
// Failures are reported as *errors.StoreError with one of four codes:
// INVALID_INPUT, READ, WRITE or DELETE. Decode failures and I/O failures on
// read share the READ code; the underlying cause stays wrapped for logging.
//
// Directory pruning on Delete fails loud: if the record file is removed but
// the now-empty directory cannot be listed or removed, Delete returns a
// DELETE error whose details carry file_removed=true.
package store
