package testutil

import (
	"strconv"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

// SeasonStart is the first window start used by SeasonCalendar.
var SeasonStart = time.Date(2024, 9, 4, 7, 0, 0, 0, time.UTC)

// WeekStart returns the UTC start of week n in SeasonCalendar.
func WeekStart(n int) time.Time {
	return SeasonStart.AddDate(0, 0, 7*(n-1))
}

// SeasonCalendar builds n consecutive week entries with bare integer labels.
func SeasonCalendar(n int, current *int) providers.Calendar {
	entries := make([]providers.CalendarEntry, 0, n)
	for i := 1; i <= n; i++ {
		start := WeekStart(i)
		end := start.AddDate(0, 0, 7).Add(-time.Minute)
		entries = append(entries, providers.CalendarEntry{
			Label:     strconv.Itoa(i),
			StartDate: start.Format("2006-01-02T15:04Z"),
			EndDate:   end.Format("2006-01-02T15:04Z"),
		})
	}
	return providers.Calendar{Entries: entries, CurrentWeek: current}
}

// Side builds a competitor from a mascot and code.
func Side(mascot, code string, winner bool) *providers.Competitor {
	return &providers.Competitor{
		Abbreviation:     code,
		ShortDisplayName: mascot,
		Name:             mascot,
		Winner:           winner,
	}
}

// Game builds a matchup; a zero kickoff is left unset.
func Game(kickoff time.Time, away, home *providers.Competitor) providers.Matchup {
	m := providers.Matchup{Away: away, Home: home}
	if !kickoff.IsZero() {
		k := kickoff
		m.Kickoff = &k
	}
	m.Completed = (away != nil && away.Winner) || (home != nil && home.Winner)
	return m
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
