package key

import (
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/stampstore/pkg/errors"
)

const (
	// Length is the number of characters in a valid key
	Length = 14

	// DirectoryLength is the number of leading characters naming the directory
	DirectoryLength = 8

	// FileNameLength is the number of trailing characters naming the file
	FileNameLength = Length - DirectoryLength

	// Layout formats a time as a key
	Layout = "20060102150405"

	dateLayout = "20060102"
)

// Key is a parsed storage key
type Key struct {
	Directory string
	FileName  string
}

// Parse splits raw into its directory and file-name components.
func Parse(raw string) (Key, error) {
	if n := utf8.RuneCountInString(raw); n != Length {
		return Key{}, errors.Newf(errors.ErrInvalidInput, "key must be %d characters, got %d", Length, n).
			WithDetail("key", raw)
	}

	runes := []rune(raw)
	return Key{
		Directory: string(runes[:DirectoryLength]),
		FileName:  string(runes[DirectoryLength:]),
	}, nil
}

// MustParse is like Parse but panics on an invalid key
func MustParse(raw string) Key {
	k, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// FromTime returns the key for t, second resolution, in t's location
func FromTime(t time.Time) string {
	return t.Format(Layout)
}

// String joins the components back into the raw key
func (k Key) String() string {
	return k.Directory + k.FileName
}

// Date interprets the directory component as a YYYYMMDD calendar date.
// Keys are not required to carry a date, so this may fail for valid keys.
func (k Key) Date() (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, k.Directory, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, errors.ErrInvalidInput, "directory %q is not a date", k.Directory)
	}
	return d, nil
}
