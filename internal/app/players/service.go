package players

import (
	"context"
	"sync"

	"github.com/kbostats/kbo-stats-service/internal/app/view"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/query"
)

// Source is the cached data the player pages read from.
type Source interface {
	Players(ctx context.Context) query.Result[[]players.Player]
	Player(ctx context.Context, id int64) query.Result[players.Player]
	PlayersByTeam(ctx context.Context, teamID int64) query.Result[[]players.Player]
	PlayersByPosition(ctx context.Context, position string) query.Result[[]players.Player]
	TopPitchers(ctx context.Context) query.Result[[]players.Player]
	TopHittersByAverage(ctx context.Context) query.Result[[]players.Player]
	TopHittersByHomeRuns(ctx context.Context) query.Result[[]players.Player]
}

// Leaders groups the three leaderboards.
type Leaders struct {
	TopPitchers          view.Section[[]PlayerView] `json:"topPitchers"`
	TopHittersByAverage  view.Section[[]PlayerView] `json:"topHittersByAverage"`
	TopHittersByHomeRuns view.Section[[]PlayerView] `json:"topHittersByHomeRuns"`
}

// Service builds player views from cached lookups.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Players lists every player, or only those at position when one is given.
func (s *Service) Players(ctx context.Context, position string) view.Section[[]PlayerView] {
	if position == "" {
		return view.From(s.source.Players(ctx), RenderList)
	}
	return view.From(s.source.PlayersByPosition(ctx, position), RenderList)
}

// Player returns one player's profile.
func (s *Service) Player(ctx context.Context, id int64) view.Section[PlayerView] {
	return view.From(s.source.Player(ctx, id), Render)
}

// Roster lists a team's players.
func (s *Service) Roster(ctx context.Context, teamID int64) view.Section[[]PlayerView] {
	return view.From(s.source.PlayersByTeam(ctx, teamID), RenderList)
}

// Leaders loads the three leaderboards concurrently; each fails on its own.
func (s *Service) Leaders(ctx context.Context) Leaders {
	var (
		out Leaders
		wg  sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		out.TopPitchers = view.From(s.source.TopPitchers(ctx), RenderList)
	}()
	go func() {
		defer wg.Done()
		out.TopHittersByAverage = view.From(s.source.TopHittersByAverage(ctx), RenderList)
	}()
	go func() {
		defer wg.Done()
		out.TopHittersByHomeRuns = view.From(s.source.TopHittersByHomeRuns(ctx), RenderList)
	}()
	wg.Wait()
	return out
}
