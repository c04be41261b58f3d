// Package key parses the 14-character keys that address stored records.
//
// A key splits into a directory component (the first 8 characters,
// conventionally a YYYYMMDD date) and a file-name component (the last 6
// characters, conventionally HHMMSS or a sequence id). Only the length is
// validated: any 14 characters form a valid key.
package key
