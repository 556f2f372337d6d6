package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/net/http/httpguts"
)

const (
	EnvAPIBaseURL = "ACTIVECAMPAIGN_API_BASE_URL"
	EnvAPIKey     = "ACTIVECAMPAIGN_API_KEY"
)

type Config struct {
	APIBaseURL string
	APIKey     string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: os.Getenv(EnvAPIBaseURL),
		APIKey:     os.Getenv(EnvAPIKey),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is Load for process start-up paths where a missing variable is fatal.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("%s is required", EnvAPIBaseURL)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL", EnvAPIBaseURL)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s is required", EnvAPIKey)
	}
	// The key is sent verbatim as the Api-Token header.
	if !httpguts.ValidHeaderFieldValue(c.APIKey) {
		return fmt.Errorf("%s is not a valid header value", EnvAPIKey)
	}
	return nil
}
