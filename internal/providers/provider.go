package providers

import (
	"context"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
)

// PlayerProvider fetches players and leaderboards from the backend.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
	FetchPlayer(ctx context.Context, id int64) (players.Player, error)
	FetchPlayersByTeam(ctx context.Context, teamID int64) ([]players.Player, error)
	FetchPlayersByPosition(ctx context.Context, position string) ([]players.Player, error)
	FetchTopPitchers(ctx context.Context) ([]players.Player, error)
	FetchTopHittersByAverage(ctx context.Context) ([]players.Player, error)
	FetchTopHittersByHomeRuns(ctx context.Context) ([]players.Player, error)
}

// TeamProvider fetches teams and standings.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
	FetchTeam(ctx context.Context, id int64) (teams.Team, error)
	FetchStandings(ctx context.Context) ([]teams.Team, error)
}

// GameProvider fetches games and inning lines.
// Dates are YYYY-MM-DD strings interpreted by the backend in KST.
type GameProvider interface {
	FetchGames(ctx context.Context) ([]games.Game, error)
	FetchGame(ctx context.Context, id int64) (games.Game, error)
	FetchGamesByDate(ctx context.Context, date string) ([]games.Game, error)
	FetchGamesByTeam(ctx context.Context, teamID int64) ([]games.Game, error)
	FetchUpcomingGames(ctx context.Context) ([]games.Game, error)
	FetchGamesByStatus(ctx context.Context, status games.GameStatus) ([]games.Game, error)
	FetchInningScores(ctx context.Context, gameID int64) ([]games.InningScore, error)
}

// UpdateTrigger asks the backend to refresh its underlying data.
type UpdateTrigger interface {
	TriggerRealTimeUpdate(ctx context.Context) (UpdateResult, error)
}

// DataProvider combines all backend capabilities.
type DataProvider interface {
	PlayerProvider
	TeamProvider
	GameProvider
	UpdateTrigger
}

// Update statuses reported by the backend.
const (
	UpdateSuccess = "success"
	UpdateError   = "error"
)

// UpdateResult is the backend's answer to a real-time update request.
type UpdateResult struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// OK reports whether the backend accepted the update.
func (r UpdateResult) OK() bool {
	return r.Status == UpdateSuccess
}
