package config

import "time"

// WarmConfig schedules background cache refreshes. An empty schedule disables warming.
type WarmConfig struct {
	Schedule string        `envconfig:"WARM_SCHEDULE"`
	Timeout  time.Duration `envconfig:"WARM_TIMEOUT" default:"2m"`
}

// Enabled reports whether a schedule is configured.
func (c WarmConfig) Enabled() bool {
	return c.Schedule != ""
}
