package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognised by both tools.
const (
	EnvRoot      = "KASDOCS_ROOT"
	EnvLogLevel  = "KASDOCS_LOG_LEVEL"
	EnvLogFormat = "KASDOCS_LOG_FORMAT"
)

// envFiles are tried in order; the first one that loads wins.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads KEY=VALUE pairs from .env or .env.local in the working
// directory. Existing process environment variables are not overwritten.
// It returns the file that was loaded, or "" when none was found.
func LoadEnvFiles() string {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Ignoring unreadable env file", "file", name, "error", err)
			continue
		}
		return name
	}
	return ""
}

// applyEnv overrides logging settings from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = NormalizeLogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = NormalizeLogFormat(v)
	}
}
