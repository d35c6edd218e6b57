package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-pool-service/internal/config"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers/espn"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case config.ProviderESPN, "":
		return espn.NewClient(espn.Config{
			BaseURL: cfg.Upstream.BaseURL,
			Timeout: cfg.Upstream.Timeout,
		})
	case config.ProviderFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
