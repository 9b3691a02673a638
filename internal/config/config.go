// Package config loads the bardclean configuration from the XDG config
// directory, with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all tool settings.
type Config struct {
	// TextDir is the default directory searched for text files.
	TextDir string `yaml:"text_dir"`

	// Backup controls whether a .bak sibling is written before rewriting.
	Backup bool `yaml:"backup"`

	// ConfidenceThreshold is the classification confidence below which
	// a warning is reported. The classifier itself never refuses on
	// confidence; this is caller policy only.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" validate:"gte=0,lte=1"`

	// Jobs is the number of files processed concurrently.
	Jobs int `yaml:"jobs" validate:"gte=1,lte=64"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		TextDir:             filepath.Join(home, "utono", "literature", "shakespeare-william", "gutenberg"),
		Backup:              true,
		ConfidenceThreshold: 0.5,
		Jobs:                4,
		Log:                 LogConfig{Level: "info"},
	}
}

// Load reads the config file if present, applies environment
// overrides, and validates the result. A missing config file is not an
// error; defaults apply.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := configPath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(cfg)
	cfg.TextDir = expandTilde(cfg.TextDir)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// configPath resolves the config file location: explicit env var, then
// XDG_CONFIG_HOME, then ~/.config.
func configPath() string {
	if path := os.Getenv("BARDCLEAN_CONFIG"); path != "" {
		return path
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bardclean", "config.yaml")
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bardclean", "config.yaml")
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv("BARDCLEAN_DIR"); dir != "" {
		cfg.TextDir = dir
	}
	if jobs := os.Getenv("BARDCLEAN_JOBS"); jobs != "" {
		if n, err := strconv.Atoi(jobs); err == nil {
			cfg.Jobs = n
		}
	}
	if level := os.Getenv("BARDCLEAN_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if file := os.Getenv("BARDCLEAN_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}
}

// expandTilde expands a leading ~/ to the user's home directory.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
