package kbo

import "time"

const (
	providerName = "kbo"

	defaultBaseURL     = "http://localhost:8080"
	defaultHTTPTimeout = 10 * time.Second
	apiPrefix          = "/api"
	errorBodyLimit     = 512
)

// Resource names used in errors, logs and metrics.
const (
	ResourcePlayers           = "players"
	ResourcePlayer            = "player"
	ResourcePlayersByTeam     = "players-by-team"
	ResourcePlayersByPosition = "players-by-position"
	ResourceTopPitchers       = "top-pitchers"
	ResourceTopHittersAverage = "top-hitters-by-average"
	ResourceTopHittersHR      = "top-hitters-by-home-runs"
	ResourceTeams             = "teams"
	ResourceTeam              = "team"
	ResourceStandings         = "team-standings"
	ResourceGames             = "games"
	ResourceGame              = "game"
	ResourceGamesByDate       = "games-by-date"
	ResourceGamesByTeam       = "games-by-team"
	ResourceUpcomingGames     = "upcoming-games"
	ResourceGamesByStatus     = "games-by-status"
	ResourceInningScores      = "inning-scores"
	ResourceRealTimeUpdate    = "real-time-update"
)
