package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the optional upstream circuit breaker.
type BreakerConfig struct {
	// ConsecutiveFailures trips the breaker once reached.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

const (
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

// breakerProvider fails fast with ErrProviderUnavailable while the upstream is known to be failing.
type breakerProvider struct {
	next    ScheduleProvider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next with a circuit breaker. Calls are never retried.
func NewBreakerProvider(next ScheduleProvider, name string, cfg BreakerConfig, logger *slog.Logger) ScheduleProvider {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = defaultBreakerFailures
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultBreakerTimeout
	}
	threshold := cfg.ConsecutiveFailures
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// Caller cancellation says nothing about upstream health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	return &breakerProvider{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (p *breakerProvider) Calendar(ctx context.Context) (Calendar, error) {
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.Calendar(ctx)
	})
	if err != nil {
		return Calendar{}, translateBreakerErr(err)
	}
	return out.(Calendar), nil
}

func (p *breakerProvider) Matchups(ctx context.Context, start, end time.Time) ([]Matchup, error) {
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.Matchups(ctx, start, end)
	})
	if err != nil {
		return nil, translateBreakerErr(err)
	}
	return out.([]Matchup), nil
}

func translateBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrProviderUnavailable, err)
	}
	return err
}
