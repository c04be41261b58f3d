// Package diary stores diary entries in a timestamp-keyed store. An entry
// is keyed by the second it was created at, so a day's entries share one
// directory.
package diary
