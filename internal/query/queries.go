package query

import (
	"context"
	"strings"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/providers"
)

// Resource names used for metrics and logs.
const (
	ResourcePlayers           = "players"
	ResourcePlayer            = "player"
	ResourcePlayersByTeam     = "players-by-team"
	ResourcePlayersByPosition = "players-by-position"
	ResourceTopPitchers       = "top-pitchers"
	ResourceTopHittersAverage = "top-hitters-average"
	ResourceTopHittersHR      = "top-hitters-home-runs"
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
)

// Queries exposes one cached lookup per backend resource.
type Queries struct {
	cache    *Cache
	provider providers.DataProvider
}

// NewQueries binds the cache to a data provider.
func NewQueries(cache *Cache, provider providers.DataProvider) *Queries {
	return &Queries{cache: cache, provider: provider}
}

// Cache returns the underlying cache.
func (q *Queries) Cache() *Cache {
	return q.cache
}

func (q *Queries) Players(ctx context.Context) Result[[]players.Player] {
	return Lookup(ctx, q.cache, Query[[]players.Player]{
		Key: PlayersKey(), Resource: ResourcePlayers, StaleTime: PlayersStaleTime, Enabled: true,
		Fetch: q.provider.FetchPlayers,
	})
}

func (q *Queries) Player(ctx context.Context, id int64) Result[players.Player] {
	return Lookup(ctx, q.cache, Query[players.Player]{
		Key: PlayerKey(id), Resource: ResourcePlayer, StaleTime: PlayerDetailStaleTime, Enabled: id != 0,
		Fetch: func(ctx context.Context) (players.Player, error) { return q.provider.FetchPlayer(ctx, id) },
	})
}

func (q *Queries) PlayersByTeam(ctx context.Context, teamID int64) Result[[]players.Player] {
	return Lookup(ctx, q.cache, Query[[]players.Player]{
		Key: PlayersByTeamKey(teamID), Resource: ResourcePlayersByTeam, StaleTime: PlayersStaleTime, Enabled: teamID != 0,
		Fetch: func(ctx context.Context) ([]players.Player, error) { return q.provider.FetchPlayersByTeam(ctx, teamID) },
	})
}

func (q *Queries) PlayersByPosition(ctx context.Context, position string) Result[[]players.Player] {
	position = strings.TrimSpace(position)
	return Lookup(ctx, q.cache, Query[[]players.Player]{
		Key: PlayersByPositionKey(position), Resource: ResourcePlayersByPosition, StaleTime: PlayersStaleTime,
		Enabled: position != "",
		Fetch: func(ctx context.Context) ([]players.Player, error) {
			return q.provider.FetchPlayersByPosition(ctx, position)
		},
	})
}

func (q *Queries) TopPitchers(ctx context.Context) Result[[]players.Player] {
	return Lookup(ctx, q.cache, Query[[]players.Player]{
		Key: TopPitchersKey(), Resource: ResourceTopPitchers, StaleTime: LeaderboardStaleTime, Enabled: true,
		Fetch: q.provider.FetchTopPitchers,
	})
}

func (q *Queries) TopHittersByAverage(ctx context.Context) Result[[]players.Player] {
	return Lookup(ctx, q.cache, Query[[]players.Player]{
		Key: TopHittersByAverageKey(), Resource: ResourceTopHittersAverage, StaleTime: LeaderboardStaleTime, Enabled: true,
		Fetch: q.provider.FetchTopHittersByAverage,
	})
}

func (q *Queries) TopHittersByHomeRuns(ctx context.Context) Result[[]players.Player] {
	return Lookup(ctx, q.cache, Query[[]players.Player]{
		Key: TopHittersByHomeRunsKey(), Resource: ResourceTopHittersHR, StaleTime: LeaderboardStaleTime, Enabled: true,
		Fetch: q.provider.FetchTopHittersByHomeRuns,
	})
}

func (q *Queries) Teams(ctx context.Context) Result[[]teams.Team] {
	return Lookup(ctx, q.cache, Query[[]teams.Team]{
		Key: TeamsKey(), Resource: ResourceTeams, StaleTime: TeamsStaleTime, Enabled: true,
		Fetch: q.provider.FetchTeams,
	})
}

func (q *Queries) Team(ctx context.Context, id int64) Result[teams.Team] {
	return Lookup(ctx, q.cache, Query[teams.Team]{
		Key: TeamKey(id), Resource: ResourceTeam, StaleTime: TeamsStaleTime, Enabled: id != 0,
		Fetch: func(ctx context.Context) (teams.Team, error) { return q.provider.FetchTeam(ctx, id) },
	})
}

func (q *Queries) Standings(ctx context.Context) Result[[]teams.Team] {
	return Lookup(ctx, q.cache, Query[[]teams.Team]{
		Key: StandingsKey(), Resource: ResourceStandings, StaleTime: StandingsStaleTime, Enabled: true,
		Fetch: q.provider.FetchStandings,
	})
}

func (q *Queries) Games(ctx context.Context) Result[[]games.Game] {
	return Lookup(ctx, q.cache, Query[[]games.Game]{
		Key: GamesKey(), Resource: ResourceGames, StaleTime: GamesStaleTime, Enabled: true,
		Fetch: q.provider.FetchGames,
	})
}

func (q *Queries) Game(ctx context.Context, id int64) Result[games.Game] {
	return Lookup(ctx, q.cache, Query[games.Game]{
		Key: GameKey(id), Resource: ResourceGame, StaleTime: GameDetailStaleTime, Enabled: id != 0,
		Fetch: func(ctx context.Context) (games.Game, error) { return q.provider.FetchGame(ctx, id) },
	})
}

func (q *Queries) GamesByDate(ctx context.Context, date string) Result[[]games.Game] {
	date = strings.TrimSpace(date)
	return Lookup(ctx, q.cache, Query[[]games.Game]{
		Key: GamesByDateKey(date), Resource: ResourceGamesByDate, StaleTime: GameScheduleStaleTime, Enabled: date != "",
		Fetch: func(ctx context.Context) ([]games.Game, error) { return q.provider.FetchGamesByDate(ctx, date) },
	})
}

func (q *Queries) GamesByTeam(ctx context.Context, teamID int64) Result[[]games.Game] {
	return Lookup(ctx, q.cache, Query[[]games.Game]{
		Key: GamesByTeamKey(teamID), Resource: ResourceGamesByTeam, StaleTime: GameScheduleStaleTime, Enabled: teamID != 0,
		Fetch: func(ctx context.Context) ([]games.Game, error) { return q.provider.FetchGamesByTeam(ctx, teamID) },
	})
}

func (q *Queries) UpcomingGames(ctx context.Context) Result[[]games.Game] {
	return Lookup(ctx, q.cache, Query[[]games.Game]{
		Key: UpcomingGamesKey(), Resource: ResourceUpcomingGames, StaleTime: GameScheduleStaleTime, Enabled: true,
		Fetch: q.provider.FetchUpcomingGames,
	})
}

func (q *Queries) GamesByStatus(ctx context.Context, status games.GameStatus) Result[[]games.Game] {
	return Lookup(ctx, q.cache, Query[[]games.Game]{
		Key: GamesByStatusKey(status), Resource: ResourceGamesByStatus, StaleTime: GamesByStatusStaleTime, Enabled: status != "",
		Fetch: func(ctx context.Context) ([]games.Game, error) { return q.provider.FetchGamesByStatus(ctx, status) },
	})
}

func (q *Queries) InningScores(ctx context.Context, gameID int64) Result[[]games.InningScore] {
	return Lookup(ctx, q.cache, Query[[]games.InningScore]{
		Key: InningScoresKey(gameID), Resource: ResourceInningScores, StaleTime: InningScoresStaleTime, Enabled: gameID != 0,
		Fetch: func(ctx context.Context) ([]games.InningScore, error) {
			return q.provider.FetchInningScores(ctx, gameID)
		},
	})
}
