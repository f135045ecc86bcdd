// Package config provides configuration for the debughost engine.
//
// Configuration is resolved in three layers: built-in defaults, an
// optional TOML file, and DEBUGHOST_-prefixed environment variables,
// with later layers overriding earlier ones.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "DEBUGHOST_"

// Config holds the engine configuration.
type Config struct {
	// MaxBatchSize is the batch size hint the host uses when walking
	// enumerators.
	MaxBatchSize int `toml:"max_batch_size"`

	// BreakpointsFile is the workspace file pending breakpoints are
	// persisted to.
	BreakpointsFile string `toml:"breakpoints_file"`

	// WatchBreakpoints reloads the breakpoints file when it changes
	// externally.
	WatchBreakpoints bool `toml:"watch_breakpoints"`

	// SymbolPaths are the directories searched for debug symbols.
	SymbolPaths []string `toml:"symbol_paths"`

	// LogLevel is the zerolog level name (trace, debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxBatchSize:     20,
		BreakpointsFile:  ".debughost/breakpoints.json",
		WatchBreakpoints: true,
		LogLevel:         "info",
	}
}

// Load resolves the configuration from defaults, the TOML file at path
// (missing file is not an error), and environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays DEBUGHOST_ environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(envPrefix + "MAX_BATCH_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %sMAX_BATCH_SIZE: %w", envPrefix, err)
		}
		cfg.MaxBatchSize = n
	}
	if v, ok := os.LookupEnv(envPrefix + "BREAKPOINTS_FILE"); ok {
		cfg.BreakpointsFile = v
	}
	if v, ok := os.LookupEnv(envPrefix + "WATCH_BREAKPOINTS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %sWATCH_BREAKPOINTS: %w", envPrefix, err)
		}
		cfg.WatchBreakpoints = b
	}
	if v, ok := os.LookupEnv(envPrefix + "SYMBOL_PATHS"); ok {
		cfg.SymbolPaths = splitPaths(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

// splitPaths splits a list value on the OS path list separator.
func splitPaths(v string) []string {
	var paths []string
	for _, p := range strings.Split(v, string(os.PathListSeparator)) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be positive, got %d", c.MaxBatchSize)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
