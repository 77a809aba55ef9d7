package counter

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/chriscorrea/ccwc/internal/fetch"
)

// CharCounter implements character counting using UTF-8 rune counting.
// Note that this counts Unicode characters, not bytes.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of characters in src; see CharCount.
func (cc *CharCounter) Count(src Source) (int, error) {
	return CharCount(src)
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}

// CharCount returns the number of decoded characters in src plus one per line.
// The extra unit per line stands for the terminator that text decoding folds
// into a single "\n"; it is exact for CRLF input only.
// A file that is not valid UTF-8 fails with ErrInvalidEncoding.
func CharCount(src Source) (int, error) {
	n, err := measure(src, fileCharCount, textCharCount)
	if err != nil {
		return 0, err
	}

	slog.Debug("Character count calculated", "source", src.Kind(), "charCount", n)
	return n, nil
}

// fileCharCount reads the file once; lines come from the raw bytes and
// characters from their decoded form.
func fileCharCount(f *os.File) (int, error) {
	raw, err := io.ReadAll(f)
	if err != nil {
		return 0, err
	}

	decoded, err := io.ReadAll(fetch.NewTextReader(bytes.NewReader(raw)))
	if err != nil {
		return 0, err
	}

	return utf8.RuneCount(decoded) + recordCount(raw), nil
}

func textCharCount(text string) int {
	if text == "" {
		return 0
	}
	return utf8.RuneCountInString(text) + textLineCount(text)
}
