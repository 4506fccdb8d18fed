package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the Recetario MCP service
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8012"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json or console

	// APIKey, when set, protects the MCP endpoint. Health endpoints stay open.
	APIKey string `env:"API_KEY"`

	// Brave Web Search API settings
	BraveAPIKey       string        `env:"BRAVE_API_KEY"`
	BraveMaxRPS       float64       `env:"BRAVE_MAX_RPS" envDefault:"0.8"`
	BraveMonthlyQuota int           `env:"BRAVE_MONTHLY_QUOTA" envDefault:"2000"`
	SearchTimeout     time.Duration `env:"SEARCH_TIMEOUT" envDefault:"12s"`

	// RedisURL enables the shared monthly quota counter. Optional: without it
	// quota enforcement degrades to an in-process counter.
	RedisURL string `env:"REDIS_URL"`

	// Supermarket page scraping
	ScrapeTimeout time.Duration `env:"SCRAPE_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
