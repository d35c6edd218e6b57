package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-pool-service/internal/config"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (breaker + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.ScheduleProvider) providers.ScheduleProvider {
	name := normalizeProviderName(cfg.Provider, base)
	if cfg.Upstream.BreakerEnabled {
		base = providers.NewBreakerProvider(base, name, providers.BreakerConfig{
			ConsecutiveFailures: cfg.Upstream.BreakerFailures,
			OpenTimeout:         cfg.Upstream.BreakerTimeout,
		}, f.logger)
	}
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}
