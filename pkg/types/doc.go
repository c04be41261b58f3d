// Package types defines the interfaces shared across stampstore packages:
// the filesystem surface consumed by the store and the path provider.
package types
