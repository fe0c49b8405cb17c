package config

import "os"

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("TODO_ADDR"); v != "" {
		cfg.Serve.Addr = v
	}
	if v := os.Getenv("TODO_WEB_DIR"); v != "" {
		cfg.Serve.WebDir = v
	}
}
