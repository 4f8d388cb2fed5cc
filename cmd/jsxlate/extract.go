package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbyte64/jsxlate"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Extract message keys from JSX source files",
	Long:  "Parses each file, finds every i18n() and <I18N> marker, and prints the canonical message keys in document order. Keys repeated across files are printed once, at their first occurrence.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := newLogger()
	opts, err := optionsFromConfigFile(flagConfig)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var keys []string
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fileKeys, err := jsxlate.ExtractMessages(string(src), opts...)
		if err != nil {
			return reportError(path, err)
		}
		log.Debug().Str("file", path).Int("messages", len(fileKeys)).Msg("extracted")
		for _, key := range fileKeys {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	if flagFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(keys)
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
