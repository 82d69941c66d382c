package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds JWT token signing configuration loaded from environment
// variables.
type JWTConfig struct {
	// Secret is the HMAC signing key. Required in production.
	Secret string

	// ExpirationHours is the token lifetime in hours.
	ExpirationHours int
}

// NewJWTConfig loads JWT configuration from environment variables.
//
// Environment variables:
//   - JWT_SECRET: signing key (required)
//   - JWT_EXPIRATION_HOURS: token lifetime in hours (default: 24)
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: 24,
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", v, err)
		}
		cfg.ExpirationHours = hours
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(c.Secret))
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", c.ExpirationHours)
	}
	return nil
}
