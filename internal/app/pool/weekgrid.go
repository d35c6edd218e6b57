package pool

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

// WeekGridBuilder builds the game-by-game grid for one week.
type WeekGridBuilder struct {
	provider providers.ScheduleProvider
	resolver *Resolver
}

// NewWeekGridBuilder constructs a WeekGridBuilder.
func NewWeekGridBuilder(provider providers.ScheduleProvider, resolver *Resolver) *WeekGridBuilder {
	return &WeekGridBuilder{provider: provider, resolver: resolver}
}

// Build resolves the requested week (nil means the provider's current week, else 1) and
// returns its owned games. An unknown week yields an empty grid without window metadata.
func (b *WeekGridBuilder) Build(ctx context.Context, requested *int, owners ownership.TeamToOwner) (WeekGrid, error) {
	windows, current, err := b.resolver.Resolve(ctx)
	if err != nil {
		return WeekGrid{}, err
	}

	week := 1
	switch {
	case requested != nil:
		week = *requested
	case current != nil:
		week = *current
	}

	grid := WeekGrid{Week: week, CurrentWeek: current, Games: []GameRow{}}
	window, ok := FindWindow(windows, week)
	if !ok {
		return grid, nil
	}
	grid.Window = window.Meta()

	matchups, err := b.provider.Matchups(ctx, window.StartDate, window.EndDate)
	if err != nil {
		return WeekGrid{}, fmt.Errorf("week %d results: %w", week, err)
	}
	grid.Games = BuildGameRows(matchups, owners)
	return grid, nil
}

// BuildGameRows maps matchups to rows, drops rows where neither side is owned, and sorts
// by kickoff, then away name, then home name.
func BuildGameRows(matchups []providers.Matchup, owners ownership.TeamToOwner) []GameRow {
	rows := make([]GameRow, 0, len(matchups))
	for _, m := range matchups {
		if m.Away == nil || m.Home == nil {
			continue
		}
		row := GameRow{
			Away: teamName(*m.Away),
			Home: teamName(*m.Home),
		}
		if m.Kickoff != nil {
			kickoff := m.Kickoff.UTC()
			row.KickoffUTC = &kickoff
		}
		row.AwayOwner = owners.OwnerOf(row.Away)
		row.HomeOwner = owners.OwnerOf(row.Home)
		if row.AwayOwner == ownership.Unowned && row.HomeOwner == ownership.Unowned {
			continue
		}

		var winner, winningOwner string
		switch {
		case m.Away.Winner:
			winner, winningOwner = row.Away, row.AwayOwner
		case m.Home.Winner:
			winner, winningOwner = row.Home, row.HomeOwner
		}
		if winner != "" {
			row.Winner = &winner
			row.WinningOwner = &winningOwner
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := kickoffOf(rows[i]), kickoffOf(rows[j])
		if !ki.Equal(kj) {
			return ki.Before(kj)
		}
		if rows[i].Away != rows[j].Away {
			return rows[i].Away < rows[j].Away
		}
		return rows[i].Home < rows[j].Home
	})
	return rows
}

func kickoffOf(r GameRow) time.Time {
	if r.KickoffUTC == nil {
		return time.Time{}
	}
	return *r.KickoffUTC
}

// teamName picks the display name and folds known franchises to their mascot so it
// matches the ownership document.
func teamName(c providers.Competitor) string {
	name := displayName(c)
	if mascot, ok := teams.MascotFor(name); ok {
		return mascot
	}
	return name
}

func displayName(c providers.Competitor) string {
	switch {
	case c.ShortDisplayName != "":
		return c.ShortDisplayName
	case c.DisplayName != "":
		return c.DisplayName
	default:
		return c.Abbreviation
	}
}
