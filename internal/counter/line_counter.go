package counter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
)

// LineCounter implements line counting.
type LineCounter struct{}

// NewLineCounter creates a new LineCounter instance.
func NewLineCounter() Counter {
	return &LineCounter{}
}

// Count returns the number of lines in src; see LineCount.
func (lc *LineCounter) Count(src Source) (int, error) {
	return LineCount(src)
}

// Name returns the name of this counting method for logging and debugging.
func (lc *LineCounter) Name() string {
	return "lines"
}

// LineCount returns the number of lines in src.
//
// A file is split into "\n"-delimited records; a final record without a
// terminator still counts. A buffer is split on universal line boundaries,
// so "\r", "\r\n" and the Unicode line separators each end a line too.
func LineCount(src Source) (int, error) {
	n, err := measure(src, fileLineCount, textLineCount)
	if err != nil {
		return 0, err
	}

	slog.Debug("Line count calculated", "source", src.Kind(), "lineCount", n)
	return n, nil
}

func fileLineCount(f *os.File) (int, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() == 0 || !info.Mode().IsRegular() {
		return scanRecords(f)
	}

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		slog.Debug("Memory mapping failed, scanning instead", "name", f.Name(), "error", err)
		return scanRecords(f)
	}
	defer mapped.Unmap()

	return recordCount(mapped), nil
}

// recordCount counts "\n"-delimited records in data.
func recordCount(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// scanRecords counts "\n"-delimited records read from r.
func scanRecords(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	pending := false
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			pending = chunk[len(chunk)-1] != '\n'
			if !pending {
				n++
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			// long record, keep reading
		case errors.Is(err, io.EOF):
			if pending {
				n++
			}
			return n, nil
		default:
			return 0, err
		}
	}
}

// textLineCount counts lines of text split on universal line boundaries,
// ignoring the empty segment after a final terminator.
func textLineCount(text string) int {
	n := 0
	pending := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isLineBoundary(r) {
			n++
			pending = false
			if r == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				size++
			}
		} else {
			pending = true
		}
		i += size
	}
	if pending {
		n++
	}
	return n
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
