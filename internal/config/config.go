package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server and CLIs.
type Config struct {
	Port                   string `envconfig:"PORT" default:"4000"`
	Provider               string `envconfig:"PROVIDER" default:"espn"`
	OwnershipURL           string `envconfig:"OWNERSHIP_URL"`
	DisplayTimezone        string `envconfig:"DISPLAY_TIMEZONE" default:"America/New_York"`
	AggregationConcurrency int    `envconfig:"AGGREGATION_CONCURRENCY" default:"1"`

	Upstream UpstreamConfig `ignored:"true"`
	Cache    CacheConfig    `ignored:"true"`
	Metrics  MetricsConfig  `ignored:"true"`
	Logging  LoggingConfig  `ignored:"true"`
	Warm     WarmConfig     `ignored:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	return LoadFiles(defaultEnvFile)
}

// LoadFiles loads the given dotenv files when present, then processes the environment.
// Variables already set in the environment are never overridden by a file.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	sections := []any{&cfg, &cfg.Upstream, &cfg.Cache, &cfg.Metrics, &cfg.Logging, &cfg.Warm}
	for _, s := range sections {
		if err := envconfig.Process("", s); err != nil {
			return Config{}, fmt.Errorf("process environment config: %w", err)
		}
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.OwnershipURL = strings.TrimSpace(c.OwnershipURL)
	if c.AggregationConcurrency < 1 {
		c.AggregationConcurrency = 1
	}
}

// Validate rejects values the service cannot run with. A missing OWNERSHIP_URL is allowed;
// requests report it instead.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderESPN, ProviderFixture:
	default:
		return fmt.Errorf("PROVIDER must be %q or %q, got %q", ProviderESPN, ProviderFixture, c.Provider)
	}
	if err := c.Cache.validate(); err != nil {
		return err
	}
	if err := c.Logging.validate(); err != nil {
		return err
	}
	return nil
}
