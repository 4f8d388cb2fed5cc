package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zbyte64/jsxlate"
)

var (
	flagFormat  string
	flagConfig  string
	flagVerbose bool
)

// errorHandled is set by reportError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "jsxlate",
	Short:         "Extract and reintegrate translatable messages in JSX source",
	Long:          "jsxlate finds i18n() and <I18N> markers in JSX source, extracts translator-safe message keys, and rewrites source files with translations while restoring the attributes and expressions hidden from translators.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run; prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file overriding marker names and the attribute allow-list")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log per-file progress to stderr")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(translateCmd)
}

// newLogger builds the stderr progress logger. Color is disabled when stderr
// is not a terminal.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// reportError prints an error through jsxlate's renderer, which shows input
// errors alongside the offending message and translation.
func reportError(path string, err error) error {
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, jsxlate.ErrorMessageForError(err))
	errorHandled = true
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
