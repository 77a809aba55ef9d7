package counter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// SourceKind tells which variant of Source is active.
type SourceKind int

const (
	// BufferSource is decoded text already in memory
	BufferSource SourceKind = iota
	// FileSource is a path on disk, opened per measurement
	FileSource
)

// String returns the string representation of the source kind.
func (k SourceKind) String() string {
	switch k {
	case FileSource:
		return "file"
	case BufferSource:
		return "buffer"
	default:
		return "unknown"
	}
}

// Source is the input to a measurement: either a file reference or an
// in-memory text buffer. The zero value is an empty buffer.
type Source struct {
	kind SourceKind
	path string
	text string
}

// FromFile returns a Source backed by the file at path. An empty path names
// no file, so it is measured like any missing file: as its own (empty) text.
func FromFile(path string) Source {
	return Source{kind: FileSource, path: path}
}

// FromBuffer returns a Source backed by already decoded text.
func FromBuffer(text string) Source {
	return Source{kind: BufferSource, text: text}
}

// Kind reports which variant is active.
func (s Source) Kind() SourceKind {
	return s.kind
}

// Path returns the file path of a FileSource, or "" for a buffer.
func (s Source) Path() string {
	return s.path
}

// Text returns the content of a BufferSource, or "" for a file.
func (s Source) Text() string {
	return s.text
}

// errNoFile marks a file reference whose file does not exist.
var errNoFile = errors.New("file does not exist")

// measure runs fromFile against the opened file behind src, or fromText
// against the buffer. A missing file is measured by fromText with the path
// as its text. The file handle is released on every return path.
func measure(src Source, fromFile func(f *os.File) (int, error), fromText func(text string) int) (int, error) {
	if src.kind == BufferSource {
		return fromText(src.text), nil
	}
	if src.path == "" {
		return fromText(""), nil
	}

	n, err := withFile(src.path, fromFile)
	if errors.Is(err, errNoFile) {
		slog.Debug("File not found, measuring path as text", "path", src.path)
		return fromText(src.path), nil
	}
	return n, err
}

// withFile opens path read-only and hands it to fn.
func withFile(path string, fn func(f *os.File) (int, error)) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, errNoFile
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	n, err := fn(f)
	if err != nil {
		return 0, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return n, nil
}
