package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/preston-bernstein/nfl-pool-service/internal/app/pool"
)

func renderStandings(out io.Writer, resp pool.StandingsResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%d standings", resp.Season))
	t.AppendHeader(table.Row{"#", "Owner", "Wins", "Teams"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for i, row := range resp.Standings {
		t.AppendRow(table.Row{i + 1, row.Owner, row.TotalWins, teamList(row.Teams)})
	}
	if len(resp.Unowned) > 0 {
		t.AppendSeparator()
		total := 0
		for _, tw := range resp.Unowned {
			total += tw.Wins
		}
		t.AppendRow(table.Row{"", "Unowned", total, teamList(resp.Unowned)})
	}
	t.AppendFooter(table.Row{"", "Generated", resp.GeneratedAt, resp.Timezone})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func renderWeek(out io.Writer, resp pool.WeekResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	title := fmt.Sprintf("%d week %d", resp.Season, resp.Week)
	if resp.CurrentWeek != nil && *resp.CurrentWeek == resp.Week {
		title += " (current)"
	}
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Kickoff (UTC)", "Away", "Owner", "Home", "Owner", "Winner", "Winning owner"})
	for _, g := range resp.Games {
		t.AppendRow(table.Row{
			kickoff(g.KickoffUTC),
			g.Away, g.AwayOwner,
			g.Home, g.HomeOwner,
			deref(g.Winner), deref(g.WinningOwner),
		})
	}
	if len(resp.Games) == 0 {
		t.AppendRow(table.Row{"no owned games", "", "", "", "", "", ""})
	}
	t.AppendFooter(table.Row{"Generated", resp.GeneratedAt, "", "", "", "", ""})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func teamList(teams []pool.TeamWins) string {
	parts := make([]string, 0, len(teams))
	for _, tw := range teams {
		parts = append(parts, fmt.Sprintf("%s (%d)", tw.Team, tw.Wins))
	}
	return strings.Join(parts, ", ")
}

func kickoff(t *time.Time) string {
	if t == nil {
		return "TBD"
	}
	return t.UTC().Format("Mon Jan 2 15:04")
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
