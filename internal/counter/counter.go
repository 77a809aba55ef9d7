// Package counter provides the measurement engine for the ccwc CLI tool.
//
// This package counts bytes, lines, words and characters of a Source. A Source
// is either a file on disk, opened and closed by every measurement, or text
// already held in memory (typically captured from piped standard input). Each
// measurement is a pure function of the Source content; nothing is cached
// between calls.
//
// Usage Example:
//
//	n, err := counter.LineCount(counter.FromFile("notes.txt"))
//	// n is the number of newline-delimited records in notes.txt
//
// A file that does not exist is not an error: the path itself is measured as
// text instead. Content that is not valid UTF-8 fails the word and character
// measurements with ErrInvalidEncoding.
package counter

import (
	"fmt"

	"github.com/chriscorrea/ccwc/internal/fetch"
)

// ErrInvalidEncoding is returned when content cannot be decoded as UTF-8.
var ErrInvalidEncoding = fetch.ErrInvalidUTF8

// Counter defines the interface for the different measurements.
type Counter interface {
	// Count returns the number of units (bytes, lines, words, or characters) in src.
	Count(src Source) (int, error)

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the available measurements.
type CountingMethod int

const (
	// Lines counts newline-delimited records
	Lines CountingMethod = iota
	// Words counts whitespace-separated tokens
	Words
	// Bytes counts raw bytes
	Bytes
	// Characters counts decoded characters (runes)
	Characters
)

// DefaultMethods are the measurements reported when none is selected.
var DefaultMethods = []CountingMethod{Lines, Words, Bytes}

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Bytes:
		return "bytes"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// NewCounter creates a new Counter instance based on the specified method.
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Lines:
		return NewLineCounter(), nil
	case Words:
		return NewWordCounter(), nil
	case Bytes:
		return NewByteCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	default:
		return nil, fmt.Errorf("unknown counting method %d", int(method))
	}
}
