package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

// StubProvider serves a fixed calendar and per-window matchups keyed by window start.
type StubProvider struct {
	mu            sync.Mutex
	Cal           providers.Calendar
	Games         map[time.Time][]providers.Matchup
	CalendarErr   error
	MatchupErr    error
	FailOn        map[time.Time]error
	calendarCalls int
	matchupCalls  int
	ranges        [][2]time.Time
}

// Calendar returns the stubbed calendar.
func (p *StubProvider) Calendar(ctx context.Context) (providers.Calendar, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calendarCalls++
	if err := ctx.Err(); err != nil {
		return providers.Calendar{}, err
	}
	if p.CalendarErr != nil {
		return providers.Calendar{}, p.CalendarErr
	}
	return p.Cal, nil
}

// Matchups returns the games registered for start.
func (p *StubProvider) Matchups(ctx context.Context, start, end time.Time) ([]providers.Matchup, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.matchupCalls++
	p.ranges = append(p.ranges, [2]time.Time{start, end})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := p.FailOn[start.UTC()]; ok {
		return nil, err
	}
	if p.MatchupErr != nil {
		return nil, p.MatchupErr
	}
	return p.Games[start.UTC()], nil
}

// CalendarCalls reports how many times Calendar was invoked.
func (p *StubProvider) CalendarCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calendarCalls
}

// MatchupCalls reports how many times Matchups was invoked.
func (p *StubProvider) MatchupCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.matchupCalls
}

// Ranges returns the requested [start, end] pairs in call order.
func (p *StubProvider) Ranges() [][2]time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][2]time.Time, len(p.ranges))
	copy(out, p.ranges)
	return out
}

// UnavailableProvider always fails with ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) Calendar(context.Context) (providers.Calendar, error) {
	return providers.Calendar{}, providers.ErrProviderUnavailable
}

func (UnavailableProvider) Matchups(context.Context, time.Time, time.Time) ([]providers.Matchup, error) {
	return nil, providers.ErrProviderUnavailable
}
