package testutil

import (
	"github.com/stretchr/testify/assert"
)

// AssertRecordExists checks that the record for raw is on disk
func (env *TestEnvironment) AssertRecordExists(raw string, msgAndArgs ...interface{}) bool {
	env.t.Helper()
	return assert.True(env.t, env.Exists(env.RecordPath(raw)), msgAndArgs...)
}

// AssertNoRecord checks that the record for raw is not on disk
func (env *TestEnvironment) AssertNoRecord(raw string, msgAndArgs ...interface{}) bool {
	env.t.Helper()
	return assert.False(env.t, env.Exists(env.RecordPath(raw)), msgAndArgs...)
}

// AssertDirExists checks that the directory for raw is on disk
func (env *TestEnvironment) AssertDirExists(raw string, msgAndArgs ...interface{}) bool {
	env.t.Helper()
	return assert.True(env.t, env.Exists(env.DirPath(raw)), msgAndArgs...)
}

// AssertNoDir checks that the directory for raw is gone
func (env *TestEnvironment) AssertNoDir(raw string, msgAndArgs ...interface{}) bool {
	env.t.Helper()
	return assert.False(env.t, env.Exists(env.DirPath(raw)), msgAndArgs...)
}

// AssertRootEntries checks the names directly under the root, in order
func (env *TestEnvironment) AssertRootEntries(want []string, msgAndArgs ...interface{}) bool {
	env.t.Helper()
	entries, err := env.FS.ReadDir(env.Root)
	if !assert.NoError(env.t, err) {
		return false
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(want) == 0 {
		return assert.Empty(env.t, names, msgAndArgs...)
	}
	return assert.Equal(env.t, want, names, msgAndArgs...)
}
