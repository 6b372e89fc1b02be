package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"battleship-engine/internal/engine"
)

type Weights struct {
	WFree  int `env:"W_FREE" envDefault:"1"`
	WBonus int `env:"W_BONUS" envDefault:"20"`
}

type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`

	EngineSeed           int64       `env:"ENGINE_SEED" envDefault:"0"`
	DefaultEngine        engine.Type `env:"DEFAULT_ENGINE" envDefault:"probability"`
	MaxPlacementAttempts int         `env:"PLACEMENT_MAX_ATTEMPTS" envDefault:"1000000"`

	Weights Weights
}

// EngineOptions converts the tuning knobs into engine options.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		MaxPlacementAttempts: c.MaxPlacementAttempts,
		Weights:              engine.Weights{Free: c.Weights.WFree, Bonus: c.Weights.WBonus},
	}
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := engine.ParseType(string(cfg.DefaultEngine)); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_ENGINE: %w", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return Config{}, fmt.Errorf("LOG_FORMAT: want json or console, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

// Load reads an optional .env file and then the environment. Variables
// already set win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}
