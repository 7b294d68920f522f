package dashboard

import (
	"context"
	"sync"

	appgames "github.com/kbostats/kbo-stats-service/internal/app/games"
	appplayers "github.com/kbostats/kbo-stats-service/internal/app/players"
	appteams "github.com/kbostats/kbo-stats-service/internal/app/teams"
	"github.com/kbostats/kbo-stats-service/internal/app/view"
)

// Dashboard is the landing page: standings, leaderboards, today's and upcoming games.
// Every card loads on its own, so one failing card leaves the rest intact.
type Dashboard struct {
	Standings view.Section[[]appteams.StandingRow] `json:"standings"`
	Leaders   appplayers.Leaders                   `json:"leaders"`
	Today     view.Section[[]appgames.GameView]    `json:"today"`
	Upcoming  view.Section[[]appgames.GameView]    `json:"upcoming"`
}

// Service assembles the dashboard.
type Service struct {
	teams   *appteams.Service
	players *appplayers.Service
	games   *appgames.Service
}

// NewService constructs a dashboard Service.
func NewService(teams *appteams.Service, players *appplayers.Service, games *appgames.Service) *Service {
	return &Service{teams: teams, players: players, games: games}
}

// Load fetches every card concurrently.
func (s *Service) Load(ctx context.Context) Dashboard {
	var (
		out Dashboard
		wg  sync.WaitGroup
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		out.Standings = s.teams.Standings(ctx)
	}()
	go func() {
		defer wg.Done()
		out.Leaders = s.players.Leaders(ctx)
	}()
	go func() {
		defer wg.Done()
		out.Today = s.games.Today(ctx)
	}()
	go func() {
		defer wg.Done()
		out.Upcoming = s.games.Upcoming(ctx)
	}()
	wg.Wait()
	return out
}
