package timeutil

import (
	"strings"
	"time"
	// Embedded zone database so display zones resolve in minimal containers.
	_ "time/tzdata"
)

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// CompactLayout is the upstream scoreboard date format (YYYYMMDD).
	CompactLayout = "20060102"
	// DisplayLayout renders operator-facing timestamps, e.g. "Sun Sep 8, 2024 1:00 PM EDT".
	DisplayLayout = "Mon Jan 2, 2006 3:04 PM MST"

	// DefaultDisplayTimezone is used when no display zone is configured.
	DefaultDisplayTimezone = "America/New_York"
)

// upstreamLayouts covers the timestamp shapes seen in scoreboard payloads.
var upstreamLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05Z",
	DateLayout,
}

// ParseUpstream parses a provider timestamp. ok is false for empty or unrecognised values.
func ParseUpstream(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range upstreamLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// CompactRange renders a start/end pair as YYYYMMDD-YYYYMMDD using UTC calendar dates.
func CompactRange(start, end time.Time) string {
	return start.UTC().Format(CompactLayout) + "-" + end.UTC().Format(CompactLayout)
}

// LoadLocation resolves a tz name, falling back to the default display zone and then UTC.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultDisplayTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// FormatDisplay renders t in loc using DisplayLayout.
func FormatDisplay(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}
