package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/providers/fixture"
)

// Provider method names accepted by StubProvider.Fail and StubProvider.Calls.
const (
	MethodPlayers           = "FetchPlayers"
	MethodPlayer            = "FetchPlayer"
	MethodPlayersByTeam     = "FetchPlayersByTeam"
	MethodPlayersByPosition = "FetchPlayersByPosition"
	MethodTopPitchers       = "FetchTopPitchers"
	MethodTopHittersAverage = "FetchTopHittersByAverage"
	MethodTopHittersHR      = "FetchTopHittersByHomeRuns"
	MethodTeams             = "FetchTeams"
	MethodTeam              = "FetchTeam"
	MethodStandings         = "FetchStandings"
	MethodGames             = "FetchGames"
	MethodGame              = "FetchGame"
	MethodGamesByDate       = "FetchGamesByDate"
	MethodGamesByTeam       = "FetchGamesByTeam"
	MethodUpcomingGames     = "FetchUpcomingGames"
	MethodGamesByStatus     = "FetchGamesByStatus"
	MethodInningScores      = "FetchInningScores"
	MethodRealTimeUpdate    = "TriggerRealTimeUpdate"
)

// StubProvider serves fixture data, counts calls per method and fails the methods it
// is told to.
type StubProvider struct {
	data *fixture.Provider

	mu     sync.Mutex
	errs   map[string]error
	calls  map[string]int
	Update providers.UpdateResult
}

var _ providers.DataProvider = (*StubProvider)(nil)

// NewStubProvider returns a stub whose fixture dates are anchored at now.
func NewStubProvider(now time.Time) *StubProvider {
	return &StubProvider{
		data:   fixture.NewAt(NowAt(now)),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
		Update: providers.UpdateResult{Status: providers.UpdateSuccess, Message: "ok"},
	}
}

// Fail makes method return err until cleared with a nil err.
func (s *StubProvider) Fail(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.errs, method)
		return
	}
	s.errs[method] = err
}

// Calls returns how often method was invoked.
func (s *StubProvider) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// TotalCalls returns the number of calls across all methods.
func (s *StubProvider) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *StubProvider) enter(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[method]++
	return s.errs[method]
}

func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := s.enter(MethodPlayers); err != nil {
		return nil, err
	}
	return s.data.FetchPlayers(ctx)
}

func (s *StubProvider) FetchPlayer(ctx context.Context, id int64) (players.Player, error) {
	if err := s.enter(MethodPlayer); err != nil {
		return players.Player{}, err
	}
	return s.data.FetchPlayer(ctx, id)
}

func (s *StubProvider) FetchPlayersByTeam(ctx context.Context, teamID int64) ([]players.Player, error) {
	if err := s.enter(MethodPlayersByTeam); err != nil {
		return nil, err
	}
	return s.data.FetchPlayersByTeam(ctx, teamID)
}

func (s *StubProvider) FetchPlayersByPosition(ctx context.Context, position string) ([]players.Player, error) {
	if err := s.enter(MethodPlayersByPosition); err != nil {
		return nil, err
	}
	return s.data.FetchPlayersByPosition(ctx, position)
}

func (s *StubProvider) FetchTopPitchers(ctx context.Context) ([]players.Player, error) {
	if err := s.enter(MethodTopPitchers); err != nil {
		return nil, err
	}
	return s.data.FetchTopPitchers(ctx)
}

func (s *StubProvider) FetchTopHittersByAverage(ctx context.Context) ([]players.Player, error) {
	if err := s.enter(MethodTopHittersAverage); err != nil {
		return nil, err
	}
	return s.data.FetchTopHittersByAverage(ctx)
}

func (s *StubProvider) FetchTopHittersByHomeRuns(ctx context.Context) ([]players.Player, error) {
	if err := s.enter(MethodTopHittersHR); err != nil {
		return nil, err
	}
	return s.data.FetchTopHittersByHomeRuns(ctx)
}

func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := s.enter(MethodTeams); err != nil {
		return nil, err
	}
	return s.data.FetchTeams(ctx)
}

func (s *StubProvider) FetchTeam(ctx context.Context, id int64) (teams.Team, error) {
	if err := s.enter(MethodTeam); err != nil {
		return teams.Team{}, err
	}
	return s.data.FetchTeam(ctx, id)
}

func (s *StubProvider) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	if err := s.enter(MethodStandings); err != nil {
		return nil, err
	}
	return s.data.FetchStandings(ctx)
}

func (s *StubProvider) FetchGames(ctx context.Context) ([]games.Game, error) {
	if err := s.enter(MethodGames); err != nil {
		return nil, err
	}
	return s.data.FetchGames(ctx)
}

func (s *StubProvider) FetchGame(ctx context.Context, id int64) (games.Game, error) {
	if err := s.enter(MethodGame); err != nil {
		return games.Game{}, err
	}
	return s.data.FetchGame(ctx, id)
}

func (s *StubProvider) FetchGamesByDate(ctx context.Context, date string) ([]games.Game, error) {
	if err := s.enter(MethodGamesByDate); err != nil {
		return nil, err
	}
	return s.data.FetchGamesByDate(ctx, date)
}

func (s *StubProvider) FetchGamesByTeam(ctx context.Context, teamID int64) ([]games.Game, error) {
	if err := s.enter(MethodGamesByTeam); err != nil {
		return nil, err
	}
	return s.data.FetchGamesByTeam(ctx, teamID)
}

func (s *StubProvider) FetchUpcomingGames(ctx context.Context) ([]games.Game, error) {
	if err := s.enter(MethodUpcomingGames); err != nil {
		return nil, err
	}
	return s.data.FetchUpcomingGames(ctx)
}

func (s *StubProvider) FetchGamesByStatus(ctx context.Context, status games.GameStatus) ([]games.Game, error) {
	if err := s.enter(MethodGamesByStatus); err != nil {
		return nil, err
	}
	return s.data.FetchGamesByStatus(ctx, status)
}

func (s *StubProvider) FetchInningScores(ctx context.Context, gameID int64) ([]games.InningScore, error) {
	if err := s.enter(MethodInningScores); err != nil {
		return nil, err
	}
	return s.data.FetchInningScores(ctx, gameID)
}

func (s *StubProvider) TriggerRealTimeUpdate(ctx context.Context) (providers.UpdateResult, error) {
	_ = ctx
	if err := s.enter(MethodRealTimeUpdate); err != nil {
		return providers.UpdateResult{Status: providers.UpdateError, Message: err.Error()}, err
	}
	return s.Update, nil
}
