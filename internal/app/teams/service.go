package teams

import (
	"context"
	"sync"

	appgames "github.com/kbostats/kbo-stats-service/internal/app/games"
	appplayers "github.com/kbostats/kbo-stats-service/internal/app/players"
	"github.com/kbostats/kbo-stats-service/internal/app/view"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/query"
)

// Source is the cached data the team pages read from.
type Source interface {
	Teams(ctx context.Context) query.Result[[]teams.Team]
	Team(ctx context.Context, id int64) query.Result[teams.Team]
	Standings(ctx context.Context) query.Result[[]teams.Team]
}

// Detail is a team page: profile, roster and schedule, each loaded independently.
type Detail struct {
	Team     view.Section[TeamView]                `json:"team"`
	Roster   view.Section[[]appplayers.PlayerView] `json:"roster"`
	Schedule view.Section[[]appgames.GameView]     `json:"schedule"`
}

// Service builds team views from cached lookups.
type Service struct {
	source  Source
	players *appplayers.Service
	games   *appgames.Service
}

// NewService constructs a Service. The player and game services supply the roster and
// schedule sections of the team page.
func NewService(source Source, players *appplayers.Service, games *appgames.Service) *Service {
	return &Service{source: source, players: players, games: games}
}

// Teams lists every club.
func (s *Service) Teams(ctx context.Context) view.Section[[]TeamView] {
	return view.From(s.source.Teams(ctx), RenderList)
}

// Standings returns the ranked league table.
func (s *Service) Standings(ctx context.Context) view.Section[[]StandingRow] {
	return view.From(s.source.Standings(ctx), RenderStandings)
}

// Detail loads a team with its roster and schedule concurrently.
func (s *Service) Detail(ctx context.Context, id int64) Detail {
	var (
		out Detail
		wg  sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		out.Team = view.From(s.source.Team(ctx, id), Render)
	}()
	go func() {
		defer wg.Done()
		out.Roster = s.players.Roster(ctx, id)
	}()
	go func() {
		defer wg.Done()
		out.Schedule = s.games.Schedule(ctx, id)
	}()
	wg.Wait()
	return out
}
