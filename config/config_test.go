package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		PokeAPI: PokeAPIConfig{
			BaseURL:    "https://pokeapi.co/api/v2",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			UserAgent:  "pokedex-mcp",
		},
		Batch: BatchConfig{
			MaxConcurrent: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base URL",
			mutate:  func(cfg *Config) { cfg.PokeAPI.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.PokeAPI.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero retries",
			mutate:  func(cfg *Config) { cfg.PokeAPI.MaxRetries = 0 },
			wantErr: true,
		},
		{
			name:    "zero batch concurrency",
			mutate:  func(cfg *Config) { cfg.Batch.MaxConcurrent = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	// No config file anywhere: defaults alone must produce a valid
	// configuration.
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("default base URL = %q", cfg.PokeAPI.BaseURL)
	}
	if cfg.PokeAPI.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v", cfg.PokeAPI.Timeout)
	}
	if cfg.PokeAPI.MaxRetries != 3 {
		t.Errorf("default max retries = %d", cfg.PokeAPI.MaxRetries)
	}
	if cfg.Batch.MaxConcurrent != 10 {
		t.Errorf("default batch concurrency = %d", cfg.Batch.MaxConcurrent)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("default logging = %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `pokeapi:
  base_url: http://localhost:8080/api/v2
  timeout: 5s
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PokeAPI.BaseURL != "http://localhost:8080/api/v2" {
		t.Errorf("base URL = %q", cfg.PokeAPI.BaseURL)
	}
	if cfg.PokeAPI.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.PokeAPI.Timeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Unset keys keep their defaults.
	if cfg.PokeAPI.MaxRetries != 3 {
		t.Errorf("max retries = %d", cfg.PokeAPI.MaxRetries)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `logging:
  level: shouting
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected validation error")
	}
}
