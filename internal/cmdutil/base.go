// Package cmdutil holds shared plumbing for the import commands.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// BaseCommandConfig holds common configuration for import commands
type BaseCommandConfig struct {
	OutputDir  string
	ConfigKey  string
	JSONOutput string
	TextOutput string
	CSVOutput  string
	WriteJSON  bool
	WriteText  bool
	WriteCSV   bool
	Overwrite  bool
}

// SetupOutputDir resolves and creates the output directories for a
// command: markdown notes plus optional JSON and plain text exports.
func SetupOutputDir(cfg *BaseCommandConfig) error {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = viper.GetString(cfg.ConfigKey + ".output")
	}
	if outputDir == "" && cfg.ConfigKey != "" {
		// Fall back to using the config key as the subdirectory name
		outputDir = cfg.ConfigKey
	}

	baseDir := viper.GetString("markdownoutputdir")
	if baseDir == "" {
		baseDir = "markdown"
	}
	cfg.OutputDir = filepath.Clean(filepath.Join(baseDir, outputDir))

	if cfg.WriteJSON && cfg.JSONOutput == "" {
		jsonBaseDir := viper.GetString("jsonoutputdir")
		if jsonBaseDir == "" {
			jsonBaseDir = "json"
		}
		cfg.JSONOutput = filepath.Clean(filepath.Join(jsonBaseDir, cfg.ConfigKey+".json"))
	}

	if cfg.WriteText && cfg.TextOutput == "" {
		textBaseDir := viper.GetString("textoutputdir")
		if textBaseDir == "" {
			textBaseDir = "text"
		}
		cfg.TextOutput = filepath.Clean(filepath.Join(textBaseDir, cfg.ConfigKey+".txt"))
	}

	if cfg.WriteCSV && cfg.CSVOutput == "" {
		csvBaseDir := viper.GetString("csvoutputdir")
		if csvBaseDir == "" {
			csvBaseDir = "csv"
		}
		cfg.CSVOutput = filepath.Clean(filepath.Join(csvBaseDir, cfg.ConfigKey+".csv"))
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cfg.WriteJSON {
		if err := os.MkdirAll(filepath.Dir(cfg.JSONOutput), 0755); err != nil {
			return fmt.Errorf("failed to create JSON output directory: %w", err)
		}
	}

	if cfg.WriteText {
		if err := os.MkdirAll(filepath.Dir(cfg.TextOutput), 0755); err != nil {
			return fmt.Errorf("failed to create text output directory: %w", err)
		}
	}

	if cfg.WriteCSV {
		if err := os.MkdirAll(filepath.Dir(cfg.CSVOutput), 0755); err != nil {
			return fmt.Errorf("failed to create CSV output directory: %w", err)
		}
	}

	return nil
}
