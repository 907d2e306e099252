package config

import (
	"golang-mockdata-provider/pkg/config"
)

// Provider holds generation-specific configuration.
type Provider struct {
	ArticleMaxIntervalMinutes int `mapstructure:"article_max_interval_minutes"`
}

// Prefetch holds the background article prefetch configuration.
type Prefetch struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

// RateLimit holds per-client rate limiting configuration.
type RateLimit struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

// Config holds the full configuration for the mock data provider service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	API       config.API      `mapstructure:"api"`
	Storage   config.Storage  `mapstructure:"storage"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	Provider  Provider        `mapstructure:"provider"`
	Prefetch  Prefetch        `mapstructure:"prefetch"`
	RateLimit RateLimit       `mapstructure:"rate_limit"`
}

// Load loads the provider configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
