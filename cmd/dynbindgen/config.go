package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds settings read from the environment. Flags override them.
type config struct {
	LogLevel  string `env:"DYNBIND_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DYNBIND_LOG_FORMAT" envDefault:"console"`
	Prefix    string `env:"DYNBIND_PREFIX" envDefault:"proc"`
	StaticTag string `env:"DYNBIND_STATIC_TAG" envDefault:"dynbind_static"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
