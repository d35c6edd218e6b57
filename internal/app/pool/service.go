package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/cache"
	"github.com/preston-bernstein/nfl-pool-service/internal/logging"
	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/timeutil"
)

// Options wires a Service.
type Options struct {
	Provider        providers.ScheduleProvider
	Ownership       ownership.Source
	Cache           *cache.Layer
	Policy          TraversalPolicy
	DisplayLocation *time.Location
	Logger          *slog.Logger
	Now             func() time.Time
}

// Service answers standings and week-grid queries through the TTL cache.
type Service struct {
	resolver   *Resolver
	aggregator *Aggregator
	grid       *WeekGridBuilder
	ownership  ownership.Source
	cache      *cache.Layer
	display    *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a Service.
func NewService(opts Options) *Service {
	resolver := NewResolver(opts.Provider)
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	display := opts.DisplayLocation
	if display == nil {
		display = timeutil.LoadLocation("")
	}
	src := opts.Ownership
	if src == nil {
		src = ownership.NewSource("", nil)
	}
	return &Service{
		resolver:   resolver,
		aggregator: NewAggregator(opts.Provider, opts.Policy),
		grid:       NewWeekGridBuilder(opts.Provider, resolver),
		ownership:  src,
		cache:      opts.Cache,
		display:    display,
		logger:     opts.Logger,
		now:        now,
	}
}

// StandingsJSON returns the encoded standings payload, cached under the season key.
func (s *Service) StandingsJSON(ctx context.Context) (json.RawMessage, error) {
	if !ownership.Configured(s.ownership) {
		return nil, ownership.ErrMissingConfiguration
	}
	return s.cache.GetOrCompute(ctx, cache.StandingsKey, s.computeStandings)
}

// WeekJSON returns the encoded week payload. A nil week auto-detects the current week.
func (s *Service) WeekJSON(ctx context.Context, week *int) (json.RawMessage, error) {
	if !ownership.Configured(s.ownership) {
		return nil, ownership.ErrMissingConfiguration
	}
	return s.cache.GetOrCompute(ctx, cache.WeekKey(week), s.weekComputation(week))
}

// Standings returns the decoded standings payload.
func (s *Service) Standings(ctx context.Context) (StandingsResponse, error) {
	var out StandingsResponse
	raw, err := s.StandingsJSON(ctx)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode standings payload: %w", err)
	}
	return out, nil
}

// Week returns the decoded week payload.
func (s *Service) Week(ctx context.Context, week *int) (WeekResponse, error) {
	var out WeekResponse
	raw, err := s.WeekJSON(ctx, week)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode week payload: %w", err)
	}
	return out, nil
}

// Refresh recomputes the standings and auto-week payloads and overwrites their cache entries.
func (s *Service) Refresh(ctx context.Context) error {
	if !ownership.Configured(s.ownership) {
		return ownership.ErrMissingConfiguration
	}
	if _, err := s.cache.Refresh(ctx, cache.StandingsKey, s.computeStandings); err != nil {
		return fmt.Errorf("refresh standings: %w", err)
	}
	if _, err := s.cache.Refresh(ctx, cache.WeekKey(nil), s.weekComputation(nil)); err != nil {
		return fmt.Errorf("refresh week: %w", err)
	}
	return nil
}

func (s *Service) computeStandings(ctx context.Context) (json.RawMessage, error) {
	started := s.now()
	cfg, err := s.ownership.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ownership: %w", err)
	}
	windows, _, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	wins, err := s.aggregator.Wins(ctx, windows)
	if err != nil {
		return nil, err
	}
	standings := BuildStandings(cfg, wins)

	loc := cfg.Location(s.display)
	resp := StandingsResponse{
		Season:          cfg.Season,
		Timezone:        loc.String(),
		GeneratedAt:     timeutil.FormatDisplay(s.now(), loc),
		CacheTTLMinutes: s.cache.TTL().Minutes(),
		Standings:       standings.Standings,
		Unowned:         standings.Unowned,
	}
	logging.Info(logging.FromContext(ctx, s.logger), "standings computed",
		slog.Int(logging.FieldCount, len(windows)),
		slog.Int64(logging.FieldDurationMS, s.now().Sub(started).Milliseconds()),
	)
	return json.Marshal(resp)
}

func (s *Service) weekComputation(week *int) cache.ComputeFunc {
	return func(ctx context.Context) (json.RawMessage, error) {
		cfg, err := s.ownership.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load ownership: %w", err)
		}
		grid, err := s.grid.Build(ctx, week, ownership.BuildTeamToOwner(cfg))
		if err != nil {
			return nil, err
		}
		loc := cfg.Location(s.display)
		resp := WeekResponse{
			Season:          cfg.Season,
			Week:            grid.Week,
			CurrentWeek:     grid.CurrentWeek,
			Window:          grid.Window,
			Games:           grid.Games,
			GeneratedAt:     timeutil.FormatDisplay(s.now(), loc),
			CacheTTLMinutes: s.cache.TTL().Minutes(),
		}
		logging.Info(logging.FromContext(ctx, s.logger), "week grid computed",
			slog.Int(logging.FieldWeek, grid.Week),
			slog.Int(logging.FieldCount, len(grid.Games)),
		)
		return json.Marshal(resp)
	}
}
