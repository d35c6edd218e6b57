package providers

import (
	"context"
	"time"
)

// ScheduleProvider fetches the season calendar and game results from an upstream source.
// Implementations shallow-normalize the upstream payload; missing fields surface as zero
// values rather than errors.
type ScheduleProvider interface {
	Calendar(ctx context.Context) (Calendar, error)
	Matchups(ctx context.Context, start, end time.Time) ([]Matchup, error)
}

// CalendarEntry is one raw week entry as published upstream. Fields are passed through
// unvalidated; the week resolver decides which entries are usable.
type CalendarEntry struct {
	Label     string
	Value     string
	StartDate string
	EndDate   string
}

// Calendar is the upstream season calendar plus the provider's notion of the current week.
type Calendar struct {
	Entries     []CalendarEntry
	CurrentWeek *int
}

// Competitor is one side of a matchup.
type Competitor struct {
	Abbreviation     string
	ShortDisplayName string
	DisplayName      string
	Name             string
	Winner           bool
}

// Matchup is a single game. Away or Home is nil when the upstream omitted that side.
type Matchup struct {
	Kickoff   *time.Time
	Completed bool
	Away      *Competitor
	Home      *Competitor
}

// Competitors returns the sides that are present, away first.
func (m Matchup) Competitors() []Competitor {
	out := make([]Competitor, 0, 2)
	if m.Away != nil {
		out = append(out, *m.Away)
	}
	if m.Home != nil {
		out = append(out, *m.Home)
	}
	return out
}
