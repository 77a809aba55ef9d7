package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscorrea/ccwc/internal/app"
	"github.com/chriscorrea/ccwc/internal/counter"
)

// execute runs a fresh root command with stdin and args, returning stdout.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// pipedStdin returns a regular file holding content; it counts as redirected input.
func pipedStdin(t *testing.T, content string) *os.File {
	t.Helper()
	f, err := os.Open(writeFile(t, content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

// terminalLike stands in for interactive stdin: it is not an *os.File, so it never counts as piped.
var terminalLike = strings.NewReader("")

func TestFileArgument(t *testing.T) {
	path := writeFile(t, "hello world\nfoo\n")

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no flag", []string{path}, "2 3 16\n"},
		{"bytes", []string{"-c", path}, "16\n"},
		{"lines", []string{"-l", path}, "2\n"},
		{"words", []string{"-w", path}, "3\n"},
		{"chars", []string{"-m", path}, "18\n"},
		{"long flag", []string{"--lines", path}, "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, terminalLike, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPipedInput(t *testing.T) {
	out, err := execute(t, pipedStdin(t, "a b c"), "-w")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = execute(t, pipedStdin(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "0 0 0\n", out)
}

func TestNullDeviceStdin(t *testing.T) {
	devNull := func(t *testing.T) *os.File {
		f, err := os.Open(os.DevNull)
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })
		return f
	}

	t.Run("without a file it is empty input", func(t *testing.T) {
		out, err := execute(t, devNull(t))
		require.NoError(t, err)
		assert.Equal(t, "0 0 0\n", out)
	})

	t.Run("with a file the file is measured", func(t *testing.T) {
		out, err := execute(t, devNull(t), writeFile(t, "hello world\nfoo\n"))
		require.NoError(t, err)
		assert.Equal(t, "2 3 16\n", out)
	})
}

func TestHelpSkipsMeasurement(t *testing.T) {
	out, err := execute(t, terminalLike, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "ccwc -c file_name.txt")
	assert.NotContains(t, out, "0 0 0")
}

func TestMisuse(t *testing.T) {
	path := writeFile(t, "content\n")

	t.Run("piped input with a file", func(t *testing.T) {
		out, err := execute(t, pipedStdin(t, "x"), path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrMisuse))
		assert.Empty(t, out)
	})

	t.Run("no input", func(t *testing.T) {
		out, err := execute(t, terminalLike)
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrMisuse))
		assert.Empty(t, out)
	})

	t.Run("two measurement flags", func(t *testing.T) {
		out, err := execute(t, terminalLike, "-c", "-l", path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrMisuse))
		assert.Contains(t, err.Error(), "ccwc -h")
		assert.Empty(t, out)
	})

	t.Run("two files", func(t *testing.T) {
		out, err := execute(t, terminalLike, path, path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrMisuse))
		assert.Contains(t, err.Error(), "ccwc -h")
		assert.Empty(t, out)
	})

	t.Run("unknown flag", func(t *testing.T) {
		out, err := execute(t, terminalLike, "-x", path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrMisuse))
		assert.Contains(t, err.Error(), "ccwc -h")
		assert.Empty(t, out)
	})
}

func TestBuildConfig(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-m", "--debug", "notes.txt"}))
	cmd.SetIn(terminalLike)

	cfg, err := buildConfig(cmd, cmd.Flags().Args())
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", cfg.Path)
	assert.False(t, cfg.Piped)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []counter.CountingMethod{counter.Characters}, cfg.Methods)
}
