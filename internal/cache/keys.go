package cache

import "strconv"

const (
	// StandingsKey caches the season standings payload.
	StandingsKey = "standings:season"
	// WeekAutoKey caches the week grid when no week was requested.
	WeekAutoKey = "week:auto"

	// DefaultPrefix namespaces keys in shared stores.
	DefaultPrefix = "pool:"

	namespaceStandings = "standings"
	namespaceWeek      = "week"
)

// WeekKey returns the cache key for a week request; nil means auto-detect.
func WeekKey(week *int) string {
	if week == nil {
		return WeekAutoKey
	}
	return "week:" + strconv.Itoa(*week)
}

func namespaceOf(key string) string {
	if key == StandingsKey {
		return namespaceStandings
	}
	return namespaceWeek
}
