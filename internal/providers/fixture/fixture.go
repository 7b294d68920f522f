package fixture

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

const topLimit = 10

// Provider serves a static KBO season slice for local runs and tests. Game dates are
// anchored to the current day in KST so "today" and "upcoming" views stay populated.
type Provider struct {
	now func() time.Time
}

var _ providers.DataProvider = (*Provider)(nil)

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// NewAt creates a fixture provider whose "today" follows the given clock.
func NewAt(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func (p *Provider) teams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "LG 트윈스", Stadium: "잠실야구장", FoundedYear: "1982", Games: 144, Wins: 76, Losses: 65, Draws: 3,
			WinningPercentage: fptr(0.539), ConsecutiveWins: 2, TeamBattingAverage: fptr(0.283), TeamERA: fptr(4.21), HomeRuns: 115},
		{ID: 2, Name: "두산 베어스", Stadium: "잠실야구장", FoundedYear: "1982", Games: 144, Wins: 74, Losses: 68, Draws: 2,
			WinningPercentage: fptr(0.521), ConsecutiveLosses: 1, TeamBattingAverage: fptr(0.276), TeamERA: fptr(4.55), HomeRuns: 108},
		{ID: 3, Name: "KIA 타이거즈", Stadium: "광주-기아 챔피언스 필드", FoundedYear: "1982", Games: 144, Wins: 87, Losses: 55, Draws: 2,
			WinningPercentage: fptr(0.613), ConsecutiveWins: 4, TeamBattingAverage: fptr(0.301), TeamERA: fptr(4.40), HomeRuns: 163},
		{ID: 4, Name: "SSG 랜더스", Stadium: "인천SSG랜더스필드", FoundedYear: "2000", Games: 144, Wins: 72, Losses: 70, Draws: 2,
			WinningPercentage: fptr(0.507), ConsecutiveLosses: 3, TeamBattingAverage: fptr(0.273), TeamERA: fptr(5.25), HomeRuns: 152},
	}
}

func (p *Provider) team(id int64) teams.Team {
	for _, t := range p.teams() {
		if t.ID == id {
			return t
		}
	}
	return teams.Team{}
}

func (p *Provider) players() []players.Player {
	return []players.Player{
		players.NewPitcher(players.Player{ID: 101, Name: "임찬규", Position: players.PositionPitcher, Number: iptr(1), Team: p.team(1)},
			players.PitchingStats{ERA: fptr(3.83), Wins: 10, Losses: 6, InningsPitched: 134, Strikeouts: 98, Walks: 41, QualityStarts: 11}),
		players.NewBatter(players.Player{ID: 102, Name: "홍창기", Position: players.PositionOutfielder, Number: iptr(51), Team: p.team(1)},
			players.BattingStats{Games: 139, AtBats: 524, Hits: 176, HomeRuns: 5, RBI: 73, Runs: 96, StolenBases: 10,
				BattingAverage: fptr(0.336), OnBasePercentage: fptr(0.447), SluggingPercentage: fptr(0.416), OPS: fptr(0.863)}),
		players.NewBatter(players.Player{ID: 201, Name: "양의지", Position: players.PositionCatcher, Number: iptr(25), Team: p.team(2)},
			players.BattingStats{Games: 119, AtBats: 430, Hits: 135, HomeRuns: 17, RBI: 94, Runs: 57,
				BattingAverage: fptr(0.314), OnBasePercentage: fptr(0.379), SluggingPercentage: fptr(0.479), OPS: fptr(0.858)}),
		players.NewPitcher(players.Player{ID: 202, Name: "곽빈", Position: players.PositionPitcher, Number: iptr(47), Team: p.team(2)},
			players.PitchingStats{ERA: fptr(4.24), Wins: 15, Losses: 9, InningsPitched: 167, Strikeouts: 154, Walks: 77, QualityStarts: 15}),
		players.NewBatter(players.Player{ID: 301, Name: "김도영", Position: players.PositionInfielder, Number: iptr(5), Team: p.team(3)},
			players.BattingStats{Games: 141, AtBats: 544, Hits: 189, HomeRuns: 38, RBI: 109, Runs: 143, StolenBases: 40,
				BattingAverage: fptr(0.347), OnBasePercentage: fptr(0.420), SluggingPercentage: fptr(0.647), OPS: fptr(1.067)}),
		players.NewPitcher(players.Player{ID: 302, Name: "정해영", Position: players.PositionPitcher, Number: iptr(62), Team: p.team(3)},
			players.PitchingStats{ERA: fptr(2.49), Wins: 2, Losses: 3, Saves: 31, InningsPitched: 50, Strikeouts: 47, Walks: 19}),
		players.NewBatter(players.Player{ID: 401, Name: "최정", Position: players.PositionInfielder, Number: iptr(14), Team: p.team(4)},
			players.BattingStats{Games: 130, AtBats: 468, Hits: 137, HomeRuns: 37, RBI: 107, Runs: 93, StolenBases: 5,
				BattingAverage: fptr(0.291), OnBasePercentage: fptr(0.394), SluggingPercentage: fptr(0.578), OPS: fptr(0.972)}),
		players.NewPitcher(players.Player{ID: 402, Name: "김광현", Position: players.PositionPitcher, Number: iptr(29), Team: p.team(4)},
			players.PitchingStats{ERA: fptr(4.93), Wins: 12, Losses: 10, InningsPitched: 162, Strikeouts: 154, Walks: 52, QualityStarts: 13, CompleteGames: 1}),
	}
}

func (p *Provider) games() []games.Game {
	now := p.now().In(timeutil.KST)
	today := time.Date(now.Year(), now.Month(), now.Day(), 18, 30, 0, 0, timeutil.KST)
	day := 24 * time.Hour

	return []games.Game{
		{ID: 1001, HomeTeam: p.team(1), AwayTeam: p.team(2), GameDate: today, Stadium: "잠실야구장",
			HomeScore: iptr(3), AwayScore: iptr(1), Status: games.StatusInProgress, CurrentInning: "5", TopBottom: "TOP",
			InningScores: p.innings(1001)},
		{ID: 1002, HomeTeam: p.team(3), AwayTeam: p.team(4), GameDate: today, Stadium: "광주-기아 챔피언스 필드",
			Status: games.StatusScheduled},
		{ID: 1003, HomeTeam: p.team(2), AwayTeam: p.team(3), GameDate: today.Add(-day), Stadium: "잠실야구장",
			HomeScore: iptr(5), AwayScore: iptr(4), Status: games.StatusCompleted},
		{ID: 1004, HomeTeam: p.team(4), AwayTeam: p.team(1), GameDate: today.Add(-day), Stadium: "인천SSG랜더스필드",
			Status: games.StatusPostponed},
		{ID: 1005, HomeTeam: p.team(4), AwayTeam: p.team(1), GameDate: today.Add(day), Stadium: "인천SSG랜더스필드",
			Status: games.StatusScheduled},
	}
}

func (p *Provider) innings(gameID int64) []games.InningScore {
	if gameID != 1001 {
		return []games.InningScore{}
	}
	lines := []struct {
		inning int
		top    bool
		score  int
		hits   int
	}{
		{1, true, 0, 1}, {1, false, 2, 3},
		{2, true, 1, 2}, {2, false, 0, 0},
		{3, true, 0, 0}, {3, false, 1, 2},
		{4, true, 0, 1}, {4, false, 0, 1},
		{5, true, 0, 0},
	}
	out := make([]games.InningScore, 0, len(lines))
	for i, l := range lines {
		out = append(out, games.InningScore{
			ID: gameID*100 + int64(i), GameID: gameID, Inning: l.inning, Top: l.top, Score: l.score, Hits: l.hits,
		})
	}
	return out
}

func notFound(resource string, id int64) error {
	return &providers.RequestError{Resource: resource, StatusCode: 404, Body: fmt.Sprintf("%s %d not found", resource, id)}
}

func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return p.players(), nil
}

func (p *Provider) FetchPlayer(ctx context.Context, id int64) (players.Player, error) {
	_ = ctx
	for _, pl := range p.players() {
		if pl.ID == id {
			return pl, nil
		}
	}
	return players.Player{}, notFound("player", id)
}

func (p *Provider) FetchPlayersByTeam(ctx context.Context, teamID int64) ([]players.Player, error) {
	_ = ctx
	return filterPlayers(p.players(), func(pl players.Player) bool { return pl.Team.ID == teamID }), nil
}

func (p *Provider) FetchPlayersByPosition(ctx context.Context, position string) ([]players.Player, error) {
	_ = ctx
	pos, ok := players.ParsePosition(position)
	if !ok {
		return []players.Player{}, nil
	}
	return filterPlayers(p.players(), func(pl players.Player) bool { return pl.Position == pos }), nil
}

func (p *Provider) FetchTopPitchers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := filterPlayers(p.players(), func(pl players.Player) bool { return pl.Pitching != nil && pl.Pitching.ERA != nil })
	sort.SliceStable(out, func(i, j int) bool { return *out[i].Pitching.ERA < *out[j].Pitching.ERA })
	return limit(out), nil
}

func (p *Provider) FetchTopHittersByAverage(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := filterPlayers(p.players(), func(pl players.Player) bool { return pl.Batting != nil && pl.Batting.BattingAverage != nil })
	sort.SliceStable(out, func(i, j int) bool { return *out[i].Batting.BattingAverage > *out[j].Batting.BattingAverage })
	return limit(out), nil
}

func (p *Provider) FetchTopHittersByHomeRuns(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := filterPlayers(p.players(), func(pl players.Player) bool { return pl.Batting != nil })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Batting.HomeRuns > out[j].Batting.HomeRuns })
	return limit(out), nil
}

func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return p.teams(), nil
}

func (p *Provider) FetchTeam(ctx context.Context, id int64) (teams.Team, error) {
	_ = ctx
	for _, t := range p.teams() {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, notFound("team", id)
}

func (p *Provider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := p.teams()
	sort.SliceStable(out, func(i, j int) bool { return *out[i].WinningPercentage > *out[j].WinningPercentage })
	return out, nil
}

func (p *Provider) FetchGames(ctx context.Context) ([]games.Game, error) {
	_ = ctx
	return p.games(), nil
}

func (p *Provider) FetchGame(ctx context.Context, id int64) (games.Game, error) {
	_ = ctx
	for _, g := range p.games() {
		if g.ID == id {
			return g, nil
		}
	}
	return games.Game{}, notFound("game", id)
}

func (p *Provider) FetchGamesByDate(ctx context.Context, date string) ([]games.Game, error) {
	_ = ctx
	return filterGames(p.games(), func(g games.Game) bool { return timeutil.FormatDate(g.GameDate.In(timeutil.KST)) == date }), nil
}

func (p *Provider) FetchGamesByTeam(ctx context.Context, teamID int64) ([]games.Game, error) {
	_ = ctx
	return filterGames(p.games(), func(g games.Game) bool { return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID }), nil
}

func (p *Provider) FetchUpcomingGames(ctx context.Context) ([]games.Game, error) {
	_ = ctx
	now := p.now()
	out := filterGames(p.games(), func(g games.Game) bool {
		return g.Status == games.StatusScheduled && !g.GameDate.Before(now)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].GameDate.Before(out[j].GameDate) })
	return out, nil
}

func (p *Provider) FetchGamesByStatus(ctx context.Context, status games.GameStatus) ([]games.Game, error) {
	_ = ctx
	return filterGames(p.games(), func(g games.Game) bool { return g.Status == status }), nil
}

func (p *Provider) FetchInningScores(ctx context.Context, gameID int64) ([]games.InningScore, error) {
	_ = ctx
	return p.innings(gameID), nil
}

func (p *Provider) TriggerRealTimeUpdate(ctx context.Context) (providers.UpdateResult, error) {
	_ = ctx
	return providers.UpdateResult{
		Status:    providers.UpdateSuccess,
		Message:   "fixture data is static",
		Timestamp: p.now().In(timeutil.KST).Format("2006-01-02T15:04:05"),
	}, nil
}

func filterPlayers(items []players.Player, keep func(players.Player) bool) []players.Player {
	out := make([]players.Player, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func filterGames(items []games.Game, keep func(games.Game) bool) []games.Game {
	out := make([]games.Game, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func limit(items []players.Player) []players.Player {
	if len(items) > topLimit {
		return items[:topLimit]
	}
	return items
}
