package teams

import (
	"strconv"

	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/format"
)

// TeamView is a team ready for display.
type TeamView struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Stadium            string `json:"stadium,omitempty"`
	LogoURL            string `json:"logoUrl,omitempty"`
	FoundedYear        string `json:"foundedYear,omitempty"`
	GamesPlayed        int    `json:"gamesPlayed"`
	Wins               int    `json:"wins"`
	Losses             int    `json:"losses"`
	Draws              int    `json:"draws"`
	WinningPercentage  string `json:"winningPercentage"`
	Streak             string `json:"streak"`
	TeamBattingAverage string `json:"teamBattingAverage"`
	TeamERA            string `json:"teamEra"`
	HomeRuns           string `json:"homeRuns"`
}

// StandingRow is a team's line in the standings table.
type StandingRow struct {
	Rank        int    `json:"rank"`
	GamesBehind string `json:"gamesBehind"`
	TeamView
}

// Render formats a team for display.
func Render(t teams.Team) TeamView {
	return TeamView{
		ID:                 t.ID,
		Name:               t.Name,
		Stadium:            t.Stadium,
		LogoURL:            t.LogoURL,
		FoundedYear:        t.FoundedYear,
		GamesPlayed:        t.GamesPlayed(),
		Wins:               t.Wins,
		Losses:             t.Losses,
		Draws:              t.Draws,
		WinningPercentage:  format.WinningPercentage(t.WinningPercentage),
		Streak:             streakText(t.Streak()),
		TeamBattingAverage: format.BattingAverage(t.TeamBattingAverage),
		TeamERA:            format.ERA(t.TeamERA),
		HomeRuns:           format.Count(t.HomeRuns),
	}
}

// RenderList formats a list of teams.
func RenderList(items []teams.Team) []TeamView {
	out := make([]TeamView, 0, len(items))
	for _, t := range items {
		out = append(out, Render(t))
	}
	return out
}

// RenderStandings ranks teams in the order the backend returned them and computes
// games behind the leader.
func RenderStandings(items []teams.Team) []StandingRow {
	out := make([]StandingRow, 0, len(items))
	for i, t := range items {
		row := StandingRow{Rank: i + 1, GamesBehind: "-", TeamView: Render(t)}
		if i > 0 {
			leader := items[0]
			gb := float64((leader.Wins-t.Wins)+(t.Losses-leader.Losses)) / 2
			row.GamesBehind = strconv.FormatFloat(gb, 'f', 1, 64)
		}
		out = append(out, row)
	}
	return out
}

func streakText(streak int) string {
	switch {
	case streak > 0:
		return strconv.Itoa(streak) + "연승"
	case streak < 0:
		return strconv.Itoa(-streak) + "연패"
	default:
		return "-"
	}
}
