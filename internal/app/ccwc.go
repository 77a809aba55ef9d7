// Package app contains the core application logic for the ccwc CLI tool.
// It picks the input source and the measurements, separated from CLI concerns.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chriscorrea/ccwc/internal/counter"
	"github.com/chriscorrea/ccwc/internal/fetch"
)

// ErrMisuse reports an invocation that cannot be served, such as piped input
// combined with a file argument. No measurement runs when it is returned.
var ErrMisuse = errors.New("improper use of the command line tool")

const usageHint = "type ccwc -h for help on the proper syntax"

// Config holds all configuration options for the ccwc application.
type Config struct {
	Path    string                   // file to measure; empty when input is piped
	Piped   bool                     // standard input carries redirected or piped content
	Stdin   io.Reader                // read in full when Piped
	Methods []counter.CountingMethod // requested measurement; empty means counter.DefaultMethods
	Debug   bool
}

// Run executes the ccwc application logic with the given configuration and
// returns the output line, terminated by a newline.
//
// Processing Pipeline:
// 1. Resolve the input source (resolveSource)
// 2. Run each requested measurement in order, stopping at the first failure
func Run(cfg Config) (string, error) {
	methods := cfg.Methods
	if len(methods) == 0 {
		methods = counter.DefaultMethods
	}
	if len(methods) > 1 && !isDefault(methods) {
		return "", fmt.Errorf("%w: choose only one of -c, -l, -w or -m (%s)", ErrMisuse, usageHint)
	}

	// step 1: resolve the input source
	src, err := resolveSource(cfg)
	if err != nil {
		return "", err
	}

	// step 2: measure; any failure discards the counts gathered so far
	results := make([]string, 0, len(methods))
	for _, method := range methods {
		c, err := counter.NewCounter(method)
		if err != nil {
			return "", err
		}

		n, err := c.Count(src)
		if err != nil {
			return "", fmt.Errorf("failed to count %s: %w", c.Name(), err)
		}
		results = append(results, strconv.Itoa(n))
	}

	return strings.Join(results, " ") + "\n", nil
}

// resolveSource turns the configured input into a counter.Source.
func resolveSource(cfg Config) (counter.Source, error) {
	switch {
	case cfg.Piped && cfg.Path != "":
		return counter.Source{}, fmt.Errorf("%w: piped input cannot be combined with a file argument (%s)", ErrMisuse, usageHint)
	case cfg.Piped:
		if cfg.Stdin == nil {
			return counter.Source{}, fmt.Errorf("piped input has no reader")
		}
		text, err := fetch.ReadText(cfg.Stdin)
		if err != nil {
			return counter.Source{}, err
		}
		slog.Debug("Measuring piped input", "textLength", len(text))
		return counter.FromBuffer(text), nil
	case cfg.Path == "":
		return counter.Source{}, fmt.Errorf("%w: missing file operand (%s)", ErrMisuse, usageHint)
	default:
		slog.Debug("Measuring file", "path", cfg.Path)
		return counter.FromFile(cfg.Path), nil
	}
}

// isDefault reports whether methods is the default combined measurement.
func isDefault(methods []counter.CountingMethod) bool {
	if len(methods) != len(counter.DefaultMethods) {
		return false
	}
	for i, m := range methods {
		if m != counter.DefaultMethods[i] {
			return false
		}
	}
	return true
}
