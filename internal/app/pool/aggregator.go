package pool

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nfl-pool-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

// Aggregator accumulates season wins per team code across week windows.
type Aggregator struct {
	provider providers.ScheduleProvider
	policy   TraversalPolicy
}

// NewAggregator constructs an Aggregator. A nil policy means sequential traversal.
func NewAggregator(provider providers.ScheduleProvider, policy TraversalPolicy) *Aggregator {
	if policy == nil {
		policy = SequentialPolicy{}
	}
	return &Aggregator{provider: provider, policy: policy}
}

// NewWinTable returns a table with every known team code at zero.
func NewWinTable() WinsByTeamCode {
	wins := make(WinsByTeamCode, 32)
	for _, code := range teams.Codes() {
		wins[code] = 0
	}
	return wins
}

// Wins fetches every window's results and counts one win per flagged winner.
// The first failing window aborts the whole computation.
func (a *Aggregator) Wins(ctx context.Context, windows []WeekWindow) (WinsByTeamCode, error) {
	perWeek, err := Traverse(ctx, a.policy, len(windows), func(ctx context.Context, i int) ([]providers.Matchup, error) {
		w := windows[i]
		matchups, err := a.provider.Matchups(ctx, w.StartDate, w.EndDate)
		if err != nil {
			return nil, fmt.Errorf("week %d results: %w", w.Label, err)
		}
		return matchups, nil
	})
	if err != nil {
		return nil, err
	}

	wins := NewWinTable()
	for _, matchups := range perWeek {
		for _, m := range matchups {
			for _, c := range m.Competitors() {
				if !c.Winner {
					continue
				}
				if code := teamCode(c); code != "" {
					wins[code]++
				}
			}
		}
	}
	return wins, nil
}

// teamCode prefers the provider abbreviation (canonicalised through the static
// table, so "WAS" counts as "WSH"), then the static table by name, then the raw name.
func teamCode(c providers.Competitor) string {
	if c.Abbreviation != "" {
		if code, ok := teams.CodeFor(c.Abbreviation); ok {
			return code
		}
		return c.Abbreviation
	}
	for _, name := range []string{c.ShortDisplayName, c.DisplayName, c.Name} {
		if code, ok := teams.CodeFor(name); ok {
			return code
		}
	}
	return displayName(c)
}
