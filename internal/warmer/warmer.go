package warmer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/metrics"
)

const defaultTimeout = 2 * time.Minute

// Refresher recomputes cached payloads.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Warmer refreshes the response cache on a cron schedule.
type Warmer struct {
	target   Refresher
	schedule cron.Schedule
	spec     string
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	cron     *cron.Cron
	job      cron.Job
	initial  sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the warmer has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New parses the cron expression (standard five fields or descriptors such as "@every 5m").
func New(target Refresher, spec string, timeout time.Duration, logger *slog.Logger, recorder *metrics.Recorder) (*Warmer, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse warm schedule %q: %w", spec, err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Warmer{
		target:   target,
		schedule: schedule,
		spec:     spec,
		timeout:  timeout,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		done:     make(chan struct{}),
	}, nil
}

// Start warms once immediately, then on every scheduled tick until ctx is cancelled or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	// The initial warm and the scheduled ticks share one wrapped job so they never overlap.
	w.job = cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() { w.RunOnce(ctx) }))
	w.cron = cron.New()
	w.cron.Schedule(w.schedule, w.job)
	w.initial.Add(1)
	w.startMu.Unlock()

	logging.Info(w.logger, "warmer started", slog.String("schedule", w.spec))
	go func() {
		defer w.initial.Done()
		w.job.Run()
	}()
	w.cron.Start()

	go func() {
		select {
		case <-ctx.Done():
		case <-w.done:
		}
		<-w.cron.Stop().Done()
		logging.Info(w.logger, "warmer stopped")
	}()
}

// Stop halts the schedule and waits for any running refresh, including the initial one, bounded by ctx.
func (w *Warmer) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.done) })

	w.startMu.Lock()
	c := w.cron
	w.startMu.Unlock()
	if c == nil {
		return nil
	}
	stopped := make(chan struct{})
	go func() {
		<-c.Stop().Done()
		w.initial.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs a single refresh and records the outcome.
func (w *Warmer) RunOnce(ctx context.Context) {
	start := w.now()
	w.recordAttempt(start)

	runCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	err := w.target.Refresh(runCtx)

	elapsed := w.now().Sub(start)
	w.metrics.RecordWarmCycle(elapsed, err)
	if err != nil {
		logging.Error(w.logger, "cache warm failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		w.recordFailure(err, start)
		return
	}
	w.recordSuccess(start)
	logging.Info(w.logger, "cache warmed", slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
