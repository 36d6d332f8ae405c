package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`
	Port        string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	TokenSecret string `env:"ACCESS_TOKEN_SECRET" validate:"required"`
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development production test"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20" validate:"gt=0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40" validate:"gt=0"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	TrustProxyHeaders  bool     `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// Addr is the listen address built from Port.
func (c *Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

var loadDotenv = func() error { return godotenv.Load() }

// Load reads an optional .env file, then the process environment, and
// validates the result. Values already in the environment win over .env.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
