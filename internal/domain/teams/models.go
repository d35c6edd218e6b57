package teams

import "strings"

// Team is a static NFL franchise record.
type Team struct {
	Code       string `json:"code"`
	Mascot     string `json:"mascot"`
	City       string `json:"city"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// FullName returns "City Mascot", e.g. "Baltimore Ravens".
func (t Team) FullName() string {
	return t.City + " " + t.Mascot
}

// league is ordered by code so iteration output is deterministic.
var league = []Team{
	{Code: "ARI", Mascot: "Cardinals", City: "Arizona", Conference: "NFC", Division: "West"},
	{Code: "ATL", Mascot: "Falcons", City: "Atlanta", Conference: "NFC", Division: "South"},
	{Code: "BAL", Mascot: "Ravens", City: "Baltimore", Conference: "AFC", Division: "North"},
	{Code: "BUF", Mascot: "Bills", City: "Buffalo", Conference: "AFC", Division: "East"},
	{Code: "CAR", Mascot: "Panthers", City: "Carolina", Conference: "NFC", Division: "South"},
	{Code: "CHI", Mascot: "Bears", City: "Chicago", Conference: "NFC", Division: "North"},
	{Code: "CIN", Mascot: "Bengals", City: "Cincinnati", Conference: "AFC", Division: "North"},
	{Code: "CLE", Mascot: "Browns", City: "Cleveland", Conference: "AFC", Division: "North"},
	{Code: "DAL", Mascot: "Cowboys", City: "Dallas", Conference: "NFC", Division: "East"},
	{Code: "DEN", Mascot: "Broncos", City: "Denver", Conference: "AFC", Division: "West"},
	{Code: "DET", Mascot: "Lions", City: "Detroit", Conference: "NFC", Division: "North"},
	{Code: "GB", Mascot: "Packers", City: "Green Bay", Conference: "NFC", Division: "North"},
	{Code: "HOU", Mascot: "Texans", City: "Houston", Conference: "AFC", Division: "South"},
	{Code: "IND", Mascot: "Colts", City: "Indianapolis", Conference: "AFC", Division: "South"},
	{Code: "JAX", Mascot: "Jaguars", City: "Jacksonville", Conference: "AFC", Division: "South"},
	{Code: "KC", Mascot: "Chiefs", City: "Kansas City", Conference: "AFC", Division: "West"},
	{Code: "LAC", Mascot: "Chargers", City: "Los Angeles", Conference: "AFC", Division: "West"},
	{Code: "LAR", Mascot: "Rams", City: "Los Angeles", Conference: "NFC", Division: "West"},
	{Code: "LV", Mascot: "Raiders", City: "Las Vegas", Conference: "AFC", Division: "West"},
	{Code: "MIA", Mascot: "Dolphins", City: "Miami", Conference: "AFC", Division: "East"},
	{Code: "MIN", Mascot: "Vikings", City: "Minnesota", Conference: "NFC", Division: "North"},
	{Code: "NE", Mascot: "Patriots", City: "New England", Conference: "AFC", Division: "East"},
	{Code: "NO", Mascot: "Saints", City: "New Orleans", Conference: "NFC", Division: "South"},
	{Code: "NYG", Mascot: "Giants", City: "New York", Conference: "NFC", Division: "East"},
	{Code: "NYJ", Mascot: "Jets", City: "New York", Conference: "AFC", Division: "East"},
	{Code: "PHI", Mascot: "Eagles", City: "Philadelphia", Conference: "NFC", Division: "East"},
	{Code: "PIT", Mascot: "Steelers", City: "Pittsburgh", Conference: "AFC", Division: "North"},
	{Code: "SEA", Mascot: "Seahawks", City: "Seattle", Conference: "NFC", Division: "West"},
	{Code: "SF", Mascot: "49ers", City: "San Francisco", Conference: "NFC", Division: "West"},
	{Code: "TB", Mascot: "Buccaneers", City: "Tampa Bay", Conference: "NFC", Division: "South"},
	{Code: "TEN", Mascot: "Titans", City: "Tennessee", Conference: "AFC", Division: "South"},
	{Code: "WSH", Mascot: "Commanders", City: "Washington", Conference: "NFC", Division: "East"},
}

// aliases covers alternate codes and names seen in upstream payloads.
var aliases = map[string]string{
	"WAS": "WSH",
	"JAC": "JAX",
	"LA":  "LAR",
	"OAK": "LV",
	"SD":  "LAC",
	"STL": "LAR",
}

var index = buildIndex()

func buildIndex() map[string]Team {
	idx := make(map[string]Team, len(league)*3+len(aliases))
	for _, t := range league {
		idx[normalize(t.Code)] = t
		idx[normalize(t.Mascot)] = t
		idx[normalize(t.FullName())] = t
	}
	for alias, code := range aliases {
		if t, ok := idx[normalize(code)]; ok {
			idx[normalize(alias)] = t
		}
	}
	return idx
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// All returns every franchise ordered by code.
func All() []Team {
	out := make([]Team, len(league))
	copy(out, league)
	return out
}

// Codes returns every franchise code.
func Codes() []string {
	out := make([]string, len(league))
	for i, t := range league {
		out[i] = t.Code
	}
	return out
}

// Lookup resolves a code, mascot or full name (case-insensitive) to its franchise.
func Lookup(name string) (Team, bool) {
	t, ok := index[normalize(name)]
	return t, ok
}

// CodeFor returns the franchise code for a code, mascot or full name.
func CodeFor(name string) (string, bool) {
	t, ok := Lookup(name)
	if !ok {
		return "", false
	}
	return t.Code, true
}

// MascotFor returns the mascot for a code, mascot or full name.
func MascotFor(name string) (string, bool) {
	t, ok := Lookup(name)
	if !ok {
		return "", false
	}
	return t.Mascot, true
}
