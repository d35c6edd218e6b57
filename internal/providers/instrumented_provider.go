package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
)

// instrumentedProvider records latency and outcome of every upstream call. It never retries.
type instrumentedProvider struct {
	inner   ScheduleProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps the given provider with metrics and failure logging.
func NewInstrumentedProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) ScheduleProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) Calendar(ctx context.Context) (Calendar, error) {
	start := p.now()
	cal, err := p.inner.Calendar(ctx)
	p.observe(ctx, "calendar", start, err)
	return cal, err
}

func (p *instrumentedProvider) Matchups(ctx context.Context, start, end time.Time) ([]Matchup, error) {
	began := p.now()
	matchups, err := p.inner.Matchups(ctx, start, end)
	p.observe(ctx, "matchups", began, err)
	return matchups, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if err == nil {
		return
	}
	logger := logging.FromContext(ctx, p.logger)
	args := []any{
		slog.String("op", op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Any("error", err),
	}
	if fe, ok := AsFetchError(err); ok {
		args = append(args, slog.Int(logging.FieldStatusCode, fe.StatusCode), slog.String(logging.FieldURL, fe.URL))
	}
	logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed", args...)
}
