package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, read from the environment.
type Config struct {
	// File is the save file location.
	File string `env:"CHRONOS_FILE"`
	// Debug enables store operation tracing on stderr.
	Debug bool `env:"CHRONOS_DEBUG" envDefault:"false"`
}

// Load reads configuration from the environment. When CHRONOS_FILE is unset
// the save file lives at ~/.chronos/chronos.json.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.File = filepath.Join(home, ".chronos", "chronos.json")
	}
	return cfg, nil
}
