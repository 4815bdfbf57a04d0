// Package config carries environment-derived defaults for the CLIs.
// Command-line flags override every value here.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string   `env:"NER_EVAL_LOG_LEVEL" envDefault:"warn"`
	Entities  []string `env:"NER_EVAL_ENTITIES" envSeparator:","`
	ChartPath string   `env:"NER_EVAL_CHART"`
}

// Load reads configuration from the environment, honouring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
