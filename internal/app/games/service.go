package games

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/app/view"
	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

// ErrInvalidFilter is returned when a list filter cannot be parsed.
var ErrInvalidFilter = errors.New("invalid game filter")

// Source is the cached data the game pages read from.
type Source interface {
	Games(ctx context.Context) query.Result[[]games.Game]
	Game(ctx context.Context, id int64) query.Result[games.Game]
	GamesByDate(ctx context.Context, date string) query.Result[[]games.Game]
	GamesByTeam(ctx context.Context, teamID int64) query.Result[[]games.Game]
	UpcomingGames(ctx context.Context) query.Result[[]games.Game]
	GamesByStatus(ctx context.Context, status games.GameStatus) query.Result[[]games.Game]
	InningScores(ctx context.Context, gameID int64) query.Result[[]games.InningScore]
}

// Filter narrows a game listing. At most one field is honoured; Date wins over Status.
type Filter struct {
	Date   string
	Status string
}

// Detail is a single game page: the game and its inning board, loaded independently.
type Detail struct {
	Game    view.Section[GameView]     `json:"game"`
	Innings view.Section[[]InningView] `json:"innings"`
}

// Service builds game views from cached lookups.
type Service struct {
	source Source
	now    func() time.Time
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// Games lists games, optionally filtered by date or status.
func (s *Service) Games(ctx context.Context, f Filter) (view.Section[[]GameView], error) {
	switch {
	case f.Date != "":
		if _, err := timeutil.ParseDate(f.Date); err != nil {
			return view.Section[[]GameView]{}, fmt.Errorf("%w: date %q", ErrInvalidFilter, f.Date)
		}
		return view.From(s.source.GamesByDate(ctx, f.Date), RenderList), nil
	case f.Status != "":
		status, ok := games.ParseStatus(f.Status)
		if !ok {
			return view.Section[[]GameView]{}, fmt.Errorf("%w: status %q", ErrInvalidFilter, f.Status)
		}
		return view.From(s.source.GamesByStatus(ctx, status), RenderList), nil
	default:
		return view.From(s.source.Games(ctx), RenderList), nil
	}
}

// Today lists games scheduled for the current KST date.
func (s *Service) Today(ctx context.Context) view.Section[[]GameView] {
	return view.From(s.source.GamesByDate(ctx, timeutil.Today(s.now())), RenderList)
}

// Upcoming lists scheduled games that have not started.
func (s *Service) Upcoming(ctx context.Context) view.Section[[]GameView] {
	return view.From(s.source.UpcomingGames(ctx), RenderList)
}

// Schedule lists a team's games.
func (s *Service) Schedule(ctx context.Context, teamID int64) view.Section[[]GameView] {
	return view.From(s.source.GamesByTeam(ctx, teamID), RenderList)
}

// Detail loads a game and its inning scores concurrently.
func (s *Service) Detail(ctx context.Context, id int64) Detail {
	var (
		out Detail
		wg  sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Game = view.From(s.source.Game(ctx, id), Render)
	}()
	go func() {
		defer wg.Done()
		out.Innings = view.From(s.source.InningScores(ctx, id), RenderInnings)
	}()
	wg.Wait()
	return out
}
