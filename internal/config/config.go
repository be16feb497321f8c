// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// OIDC holds the optional single sign-on provider settings. SSO is enabled
// only when all four values are present.
type OIDC struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether the SSO flow is configured.
func (o OIDC) Enabled() bool {
	return o.Issuer != "" && o.ClientID != "" && o.ClientSecret != "" && o.RedirectURL != ""
}

// Config is the full configuration surface of the service.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	TokenLifetime time.Duration
	OIDC          OIDC
}

// Load reads configuration from environment variables. The signing secret's
// strength is checked where the token codec is built, not here.
func Load() (Config, error) {
	cfg := Config{
		Addr:        env("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		OIDC: OIDC{
			Issuer:       os.Getenv("OIDC_ISSUER"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	lifetime := env("TOKEN_LIFETIME", "24h")
	d, err := time.ParseDuration(lifetime)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOKEN_LIFETIME %q: %w", lifetime, err)
	}
	if d <= 0 {
		return Config{}, fmt.Errorf("TOKEN_LIFETIME must be positive, got %q", lifetime)
	}
	cfg.TokenLifetime = d

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
