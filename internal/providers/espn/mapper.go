package espn

import (
	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/timeutil"
)

// MapCalendar extracts the week calendar and current week from a scoreboard root.
func MapCalendar(root Document) providers.Calendar {
	cal := providers.Calendar{
		Entries: mapCalendarEntries(calendarEntries(root.Path("leagues").Index(0).Get("calendar"))),
	}
	if week, ok := root.Path("week", "number").Int(); ok {
		cal.CurrentWeek = &week
	}
	return cal
}

// calendarEntries accepts either a flat list of week entries or a list of
// season-type groups that each carry their own entries.
func calendarEntries(calendar Document) []Document {
	items := calendar.List()
	if len(items) == 0 {
		return nil
	}
	grouped := false
	for _, item := range items {
		if item.Has("entries") {
			grouped = true
			break
		}
	}
	if !grouped {
		return items
	}

	for _, group := range items {
		if group.Get("label").String() == regularSeasonLabel || group.Get("value").String() == regularSeasonValue {
			if entries := group.Get("entries").List(); len(entries) > 0 {
				return entries
			}
		}
	}
	for _, group := range items {
		if entries := group.Get("entries").List(); len(entries) > 0 {
			return entries
		}
	}
	return nil
}

func mapCalendarEntries(items []Document) []providers.CalendarEntry {
	out := make([]providers.CalendarEntry, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		out = append(out, providers.CalendarEntry{
			Label:     item.Get("label").String(),
			Value:     item.Get("value").String(),
			StartDate: item.Get("startDate").String(),
			EndDate:   item.Get("endDate").String(),
		})
	}
	return out
}

// MapMatchups flattens every event competition in a scoreboard payload.
func MapMatchups(root Document) []providers.Matchup {
	out := make([]providers.Matchup, 0)
	for _, event := range root.Get("events").List() {
		for _, comp := range event.Get("competitions").List() {
			out = append(out, mapMatchup(event, comp))
		}
	}
	return out
}

func mapMatchup(event, comp Document) providers.Matchup {
	m := providers.Matchup{}

	date := comp.Get("date").String()
	if date == "" {
		date = event.Get("date").String()
	}
	if kickoff, ok := timeutil.ParseUpstream(date); ok {
		m.Kickoff = &kickoff
	}

	status := comp.Path("status", "type")
	if !status.Exists() {
		status = event.Path("status", "type")
	}
	m.Completed = status.Get("completed").Bool()

	for _, raw := range comp.Get("competitors").List() {
		c := mapCompetitor(raw)
		switch raw.Get("homeAway").String() {
		case "home":
			if m.Home == nil {
				m.Home = &c
			}
		case "away":
			if m.Away == nil {
				m.Away = &c
			}
		}
	}
	return m
}

func mapCompetitor(raw Document) providers.Competitor {
	team := raw.Get("team")
	return providers.Competitor{
		Abbreviation:     team.Get("abbreviation").String(),
		ShortDisplayName: team.Get("shortDisplayName").String(),
		DisplayName:      team.Get("displayName").String(),
		Name:             team.Get("name").String(),
		Winner:           raw.Get("winner").Bool(),
	}
}
