package config

import "time"

// UpstreamConfig controls how the scoreboard API is reached.
type UpstreamConfig struct {
	BaseURL         string        `envconfig:"ESPN_BASE_URL"`
	Timeout         time.Duration `envconfig:"ESPN_TIMEOUT" default:"10s"`
	BreakerEnabled  bool          `envconfig:"UPSTREAM_BREAKER_ENABLED" default:"false"`
	BreakerFailures uint32        `envconfig:"UPSTREAM_BREAKER_FAILURES" default:"5"`
	BreakerTimeout  time.Duration `envconfig:"UPSTREAM_BREAKER_TIMEOUT" default:"30s"`
}
