package counter

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/chriscorrea/ccwc/internal/fetch"
)

// WordCounter implements word counting using whitespace splitting.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in src; see WordCount.
func (wc *WordCounter) Count(src Source) (int, error) {
	return WordCount(src)
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}

// WordCount returns the number of whitespace-separated words in src.
// A file is read in decoded text mode and fails with ErrInvalidEncoding
// when it is not valid UTF-8.
func WordCount(src Source) (int, error) {
	n, err := measure(src, fileWordCount, textWordCount)
	if err != nil {
		return 0, err
	}

	slog.Debug("Word count calculated", "source", src.Kind(), "wordCount", n)
	return n, nil
}

func fileWordCount(f *os.File) (int, error) {
	data, err := io.ReadAll(fetch.NewTextReader(f))
	if err != nil {
		return 0, err
	}
	return textWordCount(string(data)), nil
}

// textWordCount splits on whitespace runs and filters out empty strings.
func textWordCount(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.FieldsFunc(text, isSpace))
}

// isSpace reports Unicode whitespace plus the ASCII file, group, record and
// unit separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
