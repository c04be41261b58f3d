// Package testutil provides test environments and assertions shared by the
// stampstore packages.
//
// A TestEnvironment bundles a storage root, the filesystem it lives on and a
// store over it. Two kinds exist:
//
//   - EnvMemoryOnly: an afero in-memory filesystem, nothing touches the disk
//   - EnvIsolated: the real filesystem inside t.TempDir()
//
// Both wrap their filesystem in a filesystem.FaultyFS so tests can inject
// failures and count calls. ForEachEnv runs a test body against each kind.
package testutil
