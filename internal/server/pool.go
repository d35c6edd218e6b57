package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nfl-pool-service/internal/app/pool"
	"github.com/preston-bernstein/nfl-pool-service/internal/cache"
	"github.com/preston-bernstein/nfl-pool-service/internal/config"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/timeutil"
)

var newRedisClient = cache.NewRedisClient

// NewPoolService wires the pool service from configuration. The returned close func releases
// the cache backend and is never nil.
func NewPoolService(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*pool.Service, func() error, error) {
	provider := newProviderFactory(logger, recorder).build(cfg)
	return newPoolServiceWithProvider(ctx, cfg, logger, recorder, provider)
}

func newPoolServiceWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.ScheduleProvider) (*pool.Service, func() error, error) {
	layer, closeFn, err := buildCache(ctx, cfg.Cache, logger, recorder)
	if err != nil {
		return nil, nil, err
	}
	svc := pool.NewService(pool.Options{
		Provider:        provider,
		Ownership:       ownership.NewSource(cfg.OwnershipURL, &http.Client{Timeout: cfg.Upstream.Timeout}),
		Cache:           layer,
		Policy:          pool.PolicyFor(cfg.AggregationConcurrency),
		DisplayLocation: timeutil.LoadLocation(cfg.DisplayTimezone),
		Logger:          logger,
	})
	return svc, closeFn, nil
}

func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger, recorder *metrics.Recorder) (*cache.Layer, func() error, error) {
	noop := func() error { return nil }
	opts := []cache.Option{
		cache.WithPrefix(cfg.Prefix),
		cache.WithLogger(logger),
		cache.WithMetrics(recorder),
	}

	switch cfg.Backend {
	case config.CacheBackendNone:
		return cache.NewLayer(nil, cfg.TTL, opts...), noop, nil
	case config.CacheBackendRedis:
		client, err := newRedisClient(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect cache: %w", err)
		}
		if logger != nil {
			logger.Info("redis cache connected", slog.String("addr", cfg.RedisAddr))
		}
		return cache.NewLayer(cache.NewRedisStore(client), cfg.TTL, opts...), client.Close, nil
	default:
		return cache.NewLayer(cache.NewMemoryStore(), cfg.TTL, opts...), noop, nil
	}
}
