// Package fetch provides input capture for the ccwc CLI tool;
// it detects piped standard input and reads it as decoded text.
package fetch

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// MaxStdinSizeBytes caps how much piped input is held in memory.
// TODO: make this configurable via a command-line flag
const MaxStdinSizeBytes = 50 * 1024 * 1024 // 50MB

// limitedReader wraps an io.Reader to enforce size limits
type limitedReader struct {
	io.Reader
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReader) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		// only an error if there is more data behind the limit
		var peek [1]byte
		m, err := l.Reader.Read(peek[:])
		if m > 0 {
			return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.Reader.Read(p)
	l.N -= int64(n)
	return
}

// IsRedirected reports whether f is anything other than an interactive
// terminal: a pipe, a regular file, or a character device such as /dev/null.
func IsRedirected(f *os.File) bool {
	return f != nil && !term.IsTerminal(int(f.Fd()))
}

// IsPiped reports whether f carries piped or file-redirected input. Unlike
// IsRedirected, character devices such as /dev/null count as not piped.
func IsPiped(f *os.File) bool {
	if f == nil {
		return false
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		slog.Debug("Could not stat input", "name", f.Name(), "error", err)
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// ReadText reads all of r in decoded text mode and returns the content.
// Content larger than MaxStdinSizeBytes is rejected.
func ReadText(r io.Reader) (string, error) {
	limited := &limitedReader{
		Reader: r,
		N:      MaxStdinSizeBytes,
		source: "stdin",
	}

	data, err := io.ReadAll(NewTextReader(limited))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	slog.Debug("Captured text input", "textLength", len(data))
	return string(data), nil
}
