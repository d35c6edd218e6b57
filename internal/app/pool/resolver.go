package pool

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/timeutil"
)

var weekLabelPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// Resolver derives regular-season week windows from the provider calendar.
// It does not cache; every call re-fetches.
type Resolver struct {
	provider providers.ScheduleProvider
}

// NewResolver constructs a Resolver.
func NewResolver(provider providers.ScheduleProvider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve returns the ordered windows and the provider's current week, if published.
func (r *Resolver) Resolve(ctx context.Context) ([]WeekWindow, *int, error) {
	cal, err := r.provider.Calendar(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve weeks: %w", err)
	}
	return ResolveWindows(cal.Entries), cal.CurrentWeek, nil
}

// ResolveWindows keeps entries with an integer label and both dates, capped at
// MaxRegularSeasonWeeks, in calendar order.
func ResolveWindows(entries []providers.CalendarEntry) []WeekWindow {
	out := make([]WeekWindow, 0, MaxRegularSeasonWeeks)
	for _, e := range entries {
		if len(out) == MaxRegularSeasonWeeks {
			break
		}
		label, ok := weekLabel(e)
		if !ok {
			continue
		}
		start, okStart := timeutil.ParseUpstream(e.StartDate)
		end, okEnd := timeutil.ParseUpstream(e.EndDate)
		if !okStart || !okEnd {
			continue
		}
		out = append(out, WeekWindow{Label: label, StartDate: start, EndDate: end})
	}
	return out
}

// FindWindow returns the window whose label equals week.
func FindWindow(windows []WeekWindow, week int) (WeekWindow, bool) {
	for _, w := range windows {
		if w.Label == week {
			return w, true
		}
	}
	return WeekWindow{}, false
}

// weekLabel accepts only a bare positive integer label.
func weekLabel(e providers.CalendarEntry) (int, bool) {
	if !weekLabelPattern.MatchString(e.Label) {
		return 0, false
	}
	n, err := strconv.Atoi(e.Label)
	if err != nil {
		return 0, false
	}
	return n, true
}
