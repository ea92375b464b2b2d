package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is the prefix for all environment variables read by Load.
	EnvPrefix = "CARSALES"

	// PreviewRows is the number of filtered rows shown by the dataset viewer.
	PreviewRows = 50

	// HistogramBins is the fixed bin count of the price distribution.
	HistogramBins = 40

	// ChartWidth and ChartHeight size the rendered SVG charts.
	ChartWidth  = 960
	ChartHeight = 420

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"
)

// Config holds the runtime settings of the dashboard server.
type Config struct {
	DataSource   string        `envconfig:"DATA_SOURCE" default:"vehicles.csv"`
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	RateLimitMax int           `envconfig:"RATE_LIMIT_MAX" default:"120"`
	RateLimitExp time.Duration `envconfig:"RATE_LIMIT_EXP" default:"1m"`

	// CacheMaxCost bounds the dataset cache, in bytes of estimated row cost.
	CacheMaxCost int64 `envconfig:"CACHE_MAX_COST" default:"268435456"`
}

// Load reads the configuration from CARSALES_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DataSource == "" {
		return fmt.Errorf("data source must not be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("rate limit max must be positive, got %d", c.RateLimitMax)
	}
	if c.CacheMaxCost <= 0 {
		return fmt.Errorf("cache max cost must be positive, got %d", c.CacheMaxCost)
	}
	return nil
}
