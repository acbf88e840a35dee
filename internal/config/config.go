// Package config reads Quizzer settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings that command-line flags may override.
type Config struct {
	// BankPath is a JSON or YAML question bank. Empty selects the embedded bank.
	BankPath string `env:"QUIZZER_BANK"`
	// Seed fixes the option shuffle. Zero draws a fresh seed per run.
	Seed int64 `env:"QUIZZER_SEED"`
	// LogFile receives debug logs. Empty discards them.
	LogFile string `env:"QUIZZER_LOG_FILE"`
}

// Load parses Config from QUIZZER_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
