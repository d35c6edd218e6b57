package espn

import "time"

const (
	// DefaultBaseURL is the public NFL site API root.
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

	scoreboardPath     = "/scoreboard"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512

	regularSeasonLabel = "Regular Season"
	regularSeasonValue = "2"

	// ProviderName labels metrics and logs for this adapter.
	ProviderName = "espn"
)
