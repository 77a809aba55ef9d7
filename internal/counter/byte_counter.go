package counter

import (
	"io"
	"log/slog"
	"os"
)

// ByteCounter implements byte counting.
type ByteCounter struct{}

// NewByteCounter creates a new ByteCounter instance.
func NewByteCounter() Counter {
	return &ByteCounter{}
}

// Count returns the number of bytes in src; see ByteCount.
func (bc *ByteCounter) Count(src Source) (int, error) {
	return ByteCount(src)
}

// Name returns the name of this counting method for logging and debugging.
func (bc *ByteCounter) Name() string {
	return "bytes"
}

// ByteCount returns the number of bytes in src.
//
// For a file this is the exact stored size. For a buffer the text was captured
// with its line terminators normalized to a single "\n", so the count is
// rebuilt as the UTF-8 length plus one byte per line. That is exact for CRLF
// input and counts one extra byte per line for LF input.
func ByteCount(src Source) (int, error) {
	n, err := measure(src, fileByteCount, textByteCount)
	if err != nil {
		return 0, err
	}

	slog.Debug("Byte count calculated", "source", src.Kind(), "byteCount", n)
	return n, nil
}

func fileByteCount(f *os.File) (int, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Mode().IsRegular() {
		return int(info.Size()), nil
	}

	// devices and FIFOs report no useful size; drain them instead
	w := &byteCountWriter{Writer: io.Discard}
	if _, err := io.Copy(w, f); err != nil {
		return 0, err
	}
	return int(w.Count()), nil
}

func textByteCount(text string) int {
	return len(text) + textLineCount(text)
}

// byteCountWriter counts the bytes written through it.
type byteCountWriter struct {
	Writer io.Writer
	count  int64
}

func (w *byteCountWriter) Write(p []byte) (int, error) {
	n, err := w.Writer.Write(p)
	w.count += int64(n)
	return n, err
}

func (w *byteCountWriter) Count() int64 {
	return w.count
}
