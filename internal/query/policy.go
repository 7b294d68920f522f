package query

import "time"

// Staleness windows per resource. A cached value younger than its window is served
// without contacting the backend.
const (
	TeamsStaleTime         = 30 * time.Minute
	StandingsStaleTime     = 10 * time.Minute
	PlayersStaleTime       = 5 * time.Minute
	PlayerDetailStaleTime  = 10 * time.Minute
	LeaderboardStaleTime   = 15 * time.Minute
	GamesStaleTime         = 2 * time.Minute
	GamesByStatusStaleTime = 2 * time.Minute
	GameScheduleStaleTime  = 5 * time.Minute
	GameDetailStaleTime    = time.Minute
	InningScoresStaleTime  = 30 * time.Second

	// retentionGrace is how long an entry outlives its staleness window so a failed
	// refetch can still fall back to it.
	retentionGrace = 5 * time.Minute

	// maxRetries is the number of retries after the first failed attempt.
	maxRetries = 2
)

// Retention returns how long the store keeps an entry with the given staleness.
func Retention(stale time.Duration) time.Duration {
	return stale + retentionGrace
}
