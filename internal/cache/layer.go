package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
)

// ComputeFunc produces a fresh payload on a cache miss.
type ComputeFunc func(ctx context.Context) (json.RawMessage, error)

// Layer wraps computations with a TTL cache. A nil store disables caching entirely.
type Layer struct {
	store   Store
	ttl     time.Duration
	prefix  string
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// Option customizes a Layer.
type Option func(*Layer)

// WithPrefix namespaces every key.
func WithPrefix(prefix string) Option {
	return func(l *Layer) { l.prefix = prefix }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Layer) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the logger used for store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layer) { l.logger = logger }
}

// WithMetrics records hit/miss counts.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(l *Layer) { l.metrics = recorder }
}

// NewLayer builds a cache layer over store with the given TTL.
func NewLayer(store Store, ttl time.Duration, opts ...Option) *Layer {
	l := &Layer{
		store:  store,
		ttl:    ttl,
		prefix: DefaultPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TTL reports the configured time-to-live.
func (l *Layer) TTL() time.Duration {
	if l == nil {
		return 0
	}
	return l.ttl
}

// Enabled reports whether a store is configured.
func (l *Layer) Enabled() bool {
	return l != nil && l.store != nil
}

// GetOrCompute returns a fresh cached payload for key or runs compute and stores its
// result. Store failures are logged and treated as misses. Compute errors are returned
// as-is and never replaced with stale data.
func (l *Layer) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (json.RawMessage, error) {
	if !l.Enabled() {
		return compute(ctx)
	}

	full := l.prefix + key
	entry, ok, err := l.store.Get(ctx, full)
	if err != nil {
		l.warn(ctx, "cache read failed", full, err)
	}
	if err == nil && ok && entry.Fresh(l.now().UnixMilli()) {
		l.metrics.RecordCacheLookup(namespaceOf(key), true)
		return entry.Payload, nil
	}
	l.metrics.RecordCacheLookup(namespaceOf(key), false)

	return l.computeAndStore(ctx, full, compute)
}

// Refresh recomputes key unconditionally and overwrites the stored entry.
func (l *Layer) Refresh(ctx context.Context, key string, compute ComputeFunc) (json.RawMessage, error) {
	if !l.Enabled() {
		return compute(ctx)
	}
	return l.computeAndStore(ctx, l.prefix+key, compute)
}

func (l *Layer) computeAndStore(ctx context.Context, full string, compute ComputeFunc) (json.RawMessage, error) {
	payload, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	entry := Entry{
		ExpiresAtMs: l.now().Add(l.ttl).UnixMilli(),
		Payload:     payload,
	}
	if err := l.store.Put(ctx, full, entry); err != nil {
		l.warn(ctx, "cache write failed", full, err)
	}
	return payload, nil
}

func (l *Layer) warn(ctx context.Context, msg, key string, err error) {
	logger := logging.FromContext(ctx, l.logger)
	logging.Warn(logger, msg, slog.String(logging.FieldCacheKey, key), slog.Any("error", err))
}
