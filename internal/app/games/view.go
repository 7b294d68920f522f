package games

import (
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/format"
)

// TeamRef names one side of a game.
type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GameView is a game ready for display.
type GameView struct {
	ID            int64            `json:"id"`
	HomeTeam      TeamRef          `json:"homeTeam"`
	AwayTeam      TeamRef          `json:"awayTeam"`
	StartsAt      time.Time        `json:"startsAt"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	Stadium       string           `json:"stadium,omitempty"`
	Status        games.GameStatus `json:"status"`
	StatusText    string           `json:"statusText"`
	HomeScore     string           `json:"homeScore"`
	AwayScore     string           `json:"awayScore"`
	CurrentInning string           `json:"currentInning,omitempty"`
	TopBottom     string           `json:"topBottom,omitempty"`
}

// InningView is one half-inning line.
type InningView struct {
	Inning     int    `json:"inning"`
	Half       string `json:"half"`
	Score      int    `json:"score"`
	Hits       int    `json:"hits"`
	Errors     int    `json:"errors"`
	LeftOnBase int    `json:"leftOnBase"`
}

// Render formats a game for display.
func Render(g games.Game) GameView {
	return GameView{
		ID:            g.ID,
		HomeTeam:      TeamRef{ID: g.HomeTeam.ID, Name: g.HomeTeam.Name},
		AwayTeam:      TeamRef{ID: g.AwayTeam.ID, Name: g.AwayTeam.Name},
		StartsAt:      g.GameDate,
		Date:          format.GameDate(g.GameDate),
		Time:          format.GameTime(g.GameDate),
		Stadium:       g.Stadium,
		Status:        g.Status,
		StatusText:    format.GameStatusText(g.Status),
		HomeScore:     format.Score(g.HomeScore),
		AwayScore:     format.Score(g.AwayScore),
		CurrentInning: g.CurrentInning,
		TopBottom:     g.TopBottom,
	}
}

// RenderList formats a list of games.
func RenderList(items []games.Game) []GameView {
	out := make([]GameView, 0, len(items))
	for _, g := range items {
		out = append(out, Render(g))
	}
	return out
}

// RenderInnings orders half-innings and formats them.
func RenderInnings(items []games.InningScore) []InningView {
	sorted := games.SortInnings(items)
	out := make([]InningView, 0, len(sorted))
	for _, in := range sorted {
		half := "bottom"
		if in.Top {
			half = "top"
		}
		out = append(out, InningView{
			Inning:     in.Inning,
			Half:       half,
			Score:      in.Score,
			Hits:       in.Hits,
			Errors:     in.Errors,
			LeftOnBase: in.LeftOnBase,
		})
	}
	return out
}
