package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}

	if err := validateBaseURL(c.Dictionary.BaseURL); err != nil {
		return fmt.Errorf("dictionary.base_url: %w", err)
	}
	if err := validateBaseURL(c.WordSource.BaseURL); err != nil {
		return fmt.Errorf("word_source.base_url: %w", err)
	}
	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %v)", c.Dictionary.Timeout)
	}
	if c.WordSource.Timeout <= 0 {
		return fmt.Errorf("word_source.timeout must be > 0 (got %v)", c.WordSource.Timeout)
	}

	if c.WordSet.Concurrency < 1 || c.WordSet.Concurrency > 26 {
		return fmt.Errorf("word_set.concurrency must be in [1, 26] (got %d)", c.WordSet.Concurrency)
	}
	if c.WordSet.Timeout <= 0 {
		return fmt.Errorf("word_set.timeout must be > 0 (got %v)", c.WordSet.Timeout)
	}
	if c.Server.WriteTimeout > 0 && c.WordSet.Timeout >= c.Server.WriteTimeout {
		return fmt.Errorf("word_set.timeout (%v) must be below server.write_timeout (%v)",
			c.WordSet.Timeout, c.Server.WriteTimeout)
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when redis is configured (got %v)", c.Cache.TTL)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
