package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbyte64/jsxlate"
)

var (
	flagTranslations string
	flagOutput       string
)

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Rewrite a JSX source file with translations applied",
	Long:  "Runs the sanitize/lookup/reconstitute pipeline over every message in the file and prints the rewritten source. Every message key must be present in the translations file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&flagTranslations, "translations", "", "translations file (.json, .yaml, or .yml) mapping message keys to translated text")
	translateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the translated source to a file instead of stdout")
	translateCmd.MarkFlagRequired("translations")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	opts, err := optionsFromConfigFile(flagConfig)
	if err != nil {
		return err
	}

	table, err := loadTranslations(flagTranslations)
	if err != nil {
		return err
	}
	log.Debug().Str("file", flagTranslations).Int("entries", len(table)).Msg("loaded translations")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	out, err := jsxlate.TranslateMessages(string(src), table, opts...)
	if err != nil {
		return reportError(args[0], err)
	}
	log.Debug().Str("file", args[0]).Msg("translated")

	if flagOutput == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(flagOutput, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}
	return nil
}
