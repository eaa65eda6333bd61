// ABOUTME: Environment-derived configuration for the CuraQ MCP server
// ABOUTME: Loads the API token and backend URL once at startup, immutable afterwards

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// DefaultAPIURL is the production CuraQ backend.
const DefaultAPIURL = "https://curaq.app"

// Config holds the process-wide settings. It is constructed once at
// startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// Token authenticates every backend call as a bearer credential.
	Token string `env:"CURAQ_MCP_TOKEN"`

	// APIURL is the backend base URL, without a trailing slash.
	APIURL string `env:"CURAQ_API_URL" envDefault:"https://curaq.app"`
}

// Load reads configuration from the environment. A missing token is a
// fatal condition: the server must not start serving tools without one.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("CURAQ_MCP_TOKEN is not set. Create a token in the CuraQ settings page and export it before starting the server")
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	return &cfg, nil
}
