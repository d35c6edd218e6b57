package pool

import "time"

// MaxRegularSeasonWeeks caps the resolved calendar.
const MaxRegularSeasonWeeks = 18

// WeekWindow is one regular-season week and the date range that scopes its results query.
type WeekWindow struct {
	Label     int
	StartDate time.Time
	EndDate   time.Time
}

// WindowMeta is the JSON view of a resolved week window.
type WindowMeta struct {
	Label     int    `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Meta renders the window for responses.
func (w WeekWindow) Meta() *WindowMeta {
	return &WindowMeta{
		Label:     w.Label,
		StartDate: w.StartDate.UTC().Format(time.RFC3339),
		EndDate:   w.EndDate.UTC().Format(time.RFC3339),
	}
}

// WinsByTeamCode counts wins per short team code.
type WinsByTeamCode map[string]int

// GameRow is one matchup in a week grid.
type GameRow struct {
	KickoffUTC   *time.Time `json:"kickoffUtc"`
	Away         string     `json:"away"`
	Home         string     `json:"home"`
	Winner       *string    `json:"winner"`
	AwayOwner    string     `json:"awayOwner"`
	HomeOwner    string     `json:"homeOwner"`
	WinningOwner *string    `json:"winningOwner"`
}

// WeekGrid is the game-by-game view of a single week.
type WeekGrid struct {
	Week        int         `json:"week"`
	CurrentWeek *int        `json:"currentWeek"`
	Window      *WindowMeta `json:"window,omitempty"`
	Games       []GameRow   `json:"games"`
}

// TeamWins is a team's win count within standings.
type TeamWins struct {
	Team string `json:"team"`
	Code string `json:"code"`
	Wins int    `json:"wins"`
}

// StandingsRow is one owner's cumulative total.
type StandingsRow struct {
	Owner     string     `json:"owner"`
	TotalWins int        `json:"totalWins"`
	Teams     []TeamWins `json:"teams"`
}

// Standings is the ranked owner table plus unowned teams in configuration order.
type Standings struct {
	Standings []StandingsRow `json:"standings"`
	Unowned   []TeamWins     `json:"unowned"`
}

// StandingsResponse is the /api/standings payload.
type StandingsResponse struct {
	Season          int            `json:"season"`
	Timezone        string         `json:"timezone"`
	GeneratedAt     string         `json:"generatedAt"`
	CacheTTLMinutes float64        `json:"cacheTtlMinutes"`
	Standings       []StandingsRow `json:"standings"`
	Unowned         []TeamWins     `json:"unowned"`
}

// WeekResponse is the /api/week payload.
type WeekResponse struct {
	Season          int         `json:"season"`
	Week            int         `json:"week"`
	CurrentWeek     *int        `json:"currentWeek"`
	Window          *WindowMeta `json:"window,omitempty"`
	Games           []GameRow   `json:"games"`
	GeneratedAt     string      `json:"generatedAt"`
	CacheTTLMinutes float64     `json:"cacheTtlMinutes"`
}
