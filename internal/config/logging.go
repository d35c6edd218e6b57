package config

import "fmt"

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func (c LoggingConfig) validate() error {
	switch c.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Format)
	}
}
