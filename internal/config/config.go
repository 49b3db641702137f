// Package config loads app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// Port is the HTTP listen port (e.g. 5000).
	Port string `mapstructure:"PORT"`
	// DatabaseURL is the Postgres DSN; when empty the server starts with the
	// store in an unavailable state instead of crashing.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// StripeSecretKey is the Stripe secret key; when empty payments are disabled.
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	// FrontendURL is the base URL the checkout redirect targets are built on.
	FrontendURL string `mapstructure:"FRONTEND_URL"`
}

// Load reads .env (if present), then builds Config from the environment via
// Viper. Missing .env is ignored. Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("FRONTEND_URL", "https://lumina-vietii.ro")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Port == "" {
		return nil, errors.New("config: PORT must be set")
	}
	if cfg.FrontendURL == "" {
		return nil, errors.New("config: FRONTEND_URL must be set")
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")

	return &cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
