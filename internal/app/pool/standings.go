package pool

import (
	"sort"

	"github.com/preston-bernstein/nfl-pool-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-pool-service/internal/ownership"
)

// BuildStandings joins wins against the ownership config. Owners are ranked by total wins
// descending, then owner name ascending. Unowned teams keep configuration order.
func BuildStandings(cfg ownership.Config, wins WinsByTeamCode) Standings {
	rows := make([]StandingsRow, 0, len(cfg.Owners))
	for _, roster := range cfg.Owners {
		row := StandingsRow{Owner: roster.Owner, Teams: make([]TeamWins, 0, len(roster.Teams))}
		for _, team := range roster.Teams {
			tw := teamWins(team, wins)
			row.Teams = append(row.Teams, tw)
			row.TotalWins += tw.Wins
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalWins != rows[j].TotalWins {
			return rows[i].TotalWins > rows[j].TotalWins
		}
		return rows[i].Owner < rows[j].Owner
	})

	unowned := make([]TeamWins, 0, len(cfg.Unowned))
	for _, team := range cfg.Unowned {
		unowned = append(unowned, teamWins(team, wins))
	}
	return Standings{Standings: rows, Unowned: unowned}
}

// teamWins falls back to the team name as its code when the static table has no entry.
func teamWins(team string, wins WinsByTeamCode) TeamWins {
	code, ok := teams.CodeFor(team)
	if !ok {
		code = team
	}
	return TeamWins{Team: team, Code: code, Wins: wins[code]}
}
