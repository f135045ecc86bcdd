package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.MaxBatchSize != 20 {
		t.Errorf("MaxBatchSize = %d, expected 20", cfg.MaxBatchSize)
	}
	if !cfg.WatchBreakpoints {
		t.Errorf("WatchBreakpoints = false, expected true")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debughost.toml")
	content := `
max_batch_size = 5
breakpoints_file = "/tmp/bps.json"
watch_breakpoints = false
symbol_paths = ["/sym/a", "/sym/b"]
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxBatchSize != 5 {
		t.Errorf("MaxBatchSize = %d, expected 5", cfg.MaxBatchSize)
	}
	if cfg.BreakpointsFile != "/tmp/bps.json" {
		t.Errorf("BreakpointsFile = %s", cfg.BreakpointsFile)
	}
	if cfg.WatchBreakpoints {
		t.Errorf("WatchBreakpoints = true, expected false")
	}
	if len(cfg.SymbolPaths) != 2 || cfg.SymbolPaths[1] != "/sym/b" {
		t.Errorf("SymbolPaths = %v", cfg.SymbolPaths)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, expected debug", cfg.LogLevel)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() of missing file error = %v", err)
	}
	def := Default()
	if cfg.MaxBatchSize != def.MaxBatchSize || cfg.BreakpointsFile != def.BreakpointsFile ||
		cfg.WatchBreakpoints != def.WatchBreakpoints || cfg.LogLevel != def.LogLevel ||
		len(cfg.SymbolPaths) != 0 {
		t.Errorf("Load() of missing file = %+v, expected defaults", cfg)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debughost.toml")
	if err := os.WriteFile(path, []byte("max_batch_size = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load() of invalid TOML succeeded, expected error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEBUGHOST_MAX_BATCH_SIZE", "7")
	t.Setenv("DEBUGHOST_LOG_LEVEL", "warn")
	t.Setenv("DEBUGHOST_WATCH_BREAKPOINTS", "false")
	t.Setenv("DEBUGHOST_SYMBOL_PATHS", "/a"+string(os.PathListSeparator)+"/b")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxBatchSize != 7 {
		t.Errorf("MaxBatchSize = %d, expected 7", cfg.MaxBatchSize)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, expected warn", cfg.LogLevel)
	}
	if cfg.WatchBreakpoints {
		t.Errorf("WatchBreakpoints = true, expected false")
	}
	if len(cfg.SymbolPaths) != 2 {
		t.Errorf("SymbolPaths = %v", cfg.SymbolPaths)
	}
}

func TestLoad_EnvInvalid(t *testing.T) {
	t.Setenv("DEBUGHOST_MAX_BATCH_SIZE", "lots")

	if _, err := Load(""); err == nil {
		t.Errorf("Load() with bad env value succeeded, expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero batch", mutate: func(c *Config) { c.MaxBatchSize = 0 }, wantErr: true},
		{name: "negative batch", mutate: func(c *Config) { c.MaxBatchSize = -1 }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "trace level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
