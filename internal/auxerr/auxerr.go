// Package auxerr defines the error kinds shared by the auxiliary data
// readers. Callers match on them with errors.Is; the concrete errors carry
// the path or value that failed.
package auxerr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrNotFound means a required input file or directory is missing or
	// cannot be opened.
	ErrNotFound = errors.New("not found")

	// ErrNetwork means a remote download failed.
	ErrNetwork = errors.New("network failure")

	// ErrParse means an input was malformed: a bad timestamp, a short
	// line, or a token that is not a number.
	ErrParse = errors.New("parse failure")

	// ErrFilesystem means a local directory or file could not be created
	// or written.
	ErrFilesystem = errors.New("filesystem failure")
)

// Open opens path for reading. Any failure to open, not only a missing
// file, is reported as ErrNotFound with the underlying error attached.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	return f, nil
}

// Parsef returns an ErrParse wrapping error with a formatted message.
func Parsef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
