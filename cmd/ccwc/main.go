package main

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/chriscorrea/ccwc/internal/app"
	"github.com/chriscorrea/ccwc/internal/counter"
	"github.com/chriscorrea/ccwc/internal/fetch"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	bytesFlag, _ := cmd.Flags().GetBool("bytes")
	linesFlag, _ := cmd.Flags().GetBool("lines")
	wordsFlag, _ := cmd.Flags().GetBool("words")
	charsFlag, _ := cmd.Flags().GetBool("chars")
	debug, _ := cmd.Flags().GetBool("debug")

	// determine the measurement; none selected means lines, words and bytes
	var methods []counter.CountingMethod
	switch {
	case bytesFlag:
		methods = []counter.CountingMethod{counter.Bytes}
	case linesFlag:
		methods = []counter.CountingMethod{counter.Lines}
	case wordsFlag:
		methods = []counter.CountingMethod{counter.Words}
	case charsFlag:
		methods = []counter.CountingMethod{counter.Characters}
	}

	var path string
	if len(args) > 0 {
		path = args[len(args)-1]
	}

	// redirected stdin is measured instead of a file; without a file argument
	// a character device such as /dev/null is read too
	stdin := cmd.InOrStdin()
	f, isFile := stdin.(*os.File)
	piped := isFile && fetch.IsPiped(f)
	if isFile && path == "" {
		piped = fetch.IsRedirected(f)
	}

	return app.Config{
		Path:    path,
		Piped:   piped,
		Stdin:   stdin,
		Methods: methods,
		Debug:   debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := charmlog.ErrorLevel
	if debug {
		level = charmlog.DebugLevel
	}

	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(handler))
}

const usageHint = "type ccwc -h for help on the proper syntax"

// misuse marks argument and flag errors from cobra as app.ErrMisuse with a usage hint
func misuse(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v (%s)", app.ErrMisuse, err, usageHint)
}

// maxOneFile accepts at most one file argument
func maxOneFile(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return misuse(cmd, err)
	}
	return nil
}

// newRootCmd creates the root command with its flags
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ccwc [-c|-l|-w|-m] [file]",
		Short: "Count lines, words, bytes and characters",
		Long: `ccwc reports the line, word and byte counts of a file or of piped input.

If you are piping input into ccwc:
  cat file_name.txt | ccwc            line, word and byte counts
  cat file_name.txt | ccwc -c         only one of bytes, lines, words or
                      ccwc -l/-w/-m   characters

If you are reading from a file:
  ccwc file_name.txt                  line, word and byte counts
  ccwc -c file_name.txt               only one of bytes, lines, words or
  ccwc -l/-w/-m file_name.txt         characters`,
		Args:          maxOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// build config from flags and arguments
			config, err := buildConfig(cmd, args)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			// configure logging pending debug flag
			setupLogger(config.Debug)

			result, err := app.Run(config)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	// measurement flags
	rootCmd.Flags().BoolP("bytes", "c", false, "Print the byte count")
	rootCmd.Flags().BoolP("lines", "l", false, "Print the line count")
	rootCmd.Flags().BoolP("words", "w", false, "Print the word count")
	rootCmd.Flags().BoolP("chars", "m", false, "Print the character count")

	// only one measurement per invocation
	rootCmd.MarkFlagsMutuallyExclusive("bytes", "lines", "words", "chars")
	rootCmd.SetFlagErrorFunc(misuse)

	// other flags
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
