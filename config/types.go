package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PokeAPIConfig holds upstream API connection details
type PokeAPIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// BatchConfig contains settings for concurrent batch fetches
type BatchConfig struct {
	MaxConcurrent int `mapstructure:"max_concurrent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
