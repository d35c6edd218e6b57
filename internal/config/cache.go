package config

import (
	"fmt"
	"time"
)

// CacheConfig selects and tunes the response cache.
type CacheConfig struct {
	Backend       string        `envconfig:"CACHE_BACKEND" default:"memory"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	Prefix        string        `envconfig:"CACHE_PREFIX" default:"pool:"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
}

func (c CacheConfig) validate() error {
	switch c.Backend {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory, redis or none, got %q", c.Backend)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.TTL)
	}
	return nil
}
