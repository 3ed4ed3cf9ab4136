// Package config holds service-level configuration. Provider-level LLM
// configuration lives in internal/llm.
package config

import "os"

// Config holds HTTP service configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DefaultLanguage is the language the pipelines fall back to.
	DefaultLanguage string

	// DBPath is the SQLite database path for the LLM audit log.
	// Empty means the default data directory is used.
	DBPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		DefaultLanguage: "en",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if a := os.Getenv("MENTOR_ADDR"); a != "" {
		cfg.Addr = a
	}
	if l := os.Getenv("MENTOR_DEFAULT_LANGUAGE"); l != "" {
		cfg.DefaultLanguage = l
	}
	if p := os.Getenv("MENTOR_DB"); p != "" {
		cfg.DBPath = p
	}

	return cfg
}
