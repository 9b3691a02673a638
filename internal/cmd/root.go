package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/utono/bardclean/internal/config"
	"github.com/utono/bardclean/internal/log"
)

var (
	// Global flags
	verbose bool
	format  string
	textDir string

	cfg *config.Config

	// exitCode is set by commands that map outcomes to specific
	// process exit codes (4 blocked, 5 not processable, 1 failed).
	// Errors returned from RunE exit with code 2 (usage/environment).
	exitCode int
)

// RootCmd is the base command for bardclean
var RootCmd = &cobra.Command{
	Use:   "bardclean",
	Short: "Strip punctuation from dialogue in literary texts",
	Long: `bardclean classifies literary text files (play, narrative poem,
sonnet sequence, lyric poem) and strips a fixed punctuation set from
character dialogue lines while preserving periods, question marks and
apostrophes.

Pure poetry (sonnets, lyric poems) is protected from rewriting by
default; use --force to override. Files of unknown type are never
processed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		log.Init(log.Options{Level: level, File: cfg.Log.File})

		if textDir != "" {
			cfg.TextDir = textDir
		}
		return nil
	},
}

// ExitCode returns the exit code recorded by the executed command.
func ExitCode() int {
	return exitCode
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&textDir, "dir", "d", "", "Directory containing text files")
}
