package kbo

import (
	"fmt"
	"strings"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:                 t.ID,
		Name:               t.Name,
		Stadium:            t.Stadium,
		LogoURL:            t.LogoURL,
		FoundedYear:        t.FoundedYear,
		Games:              intOrZero(t.Games),
		Wins:               intOrZero(t.Wins),
		Losses:             intOrZero(t.Losses),
		Draws:              intOrZero(t.Draws),
		WinningPercentage:  t.WinningPercentage,
		ConsecutiveWins:    intOrZero(t.ConsecutiveWins),
		ConsecutiveLosses:  intOrZero(t.ConsecutiveLosses),
		TeamBattingAverage: t.TeamBattingAverage,
		TeamERA:            t.TeamERA,
		HomeRuns:           intOrZero(t.HomeRuns),
	}
}

func mapTeams(items []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(items))
	for _, t := range items {
		out = append(out, mapTeam(t))
	}
	return out
}

func mapPosition(raw string) players.Position {
	if pos, ok := players.ParsePosition(raw); ok {
		return pos
	}
	return players.Position(strings.TrimSpace(raw))
}

func mapPlayer(p playerResponse) players.Player {
	base := players.Player{
		ID:              p.ID,
		Name:            p.Name,
		Position:        mapPosition(p.Position),
		Number:          p.Number,
		BirthDate:       p.BirthDate,
		Height:          intOrZero(p.Height),
		Weight:          intOrZero(p.Weight),
		ProfileImageURL: p.ProfileImageURL,
	}
	if p.Team != nil {
		base.Team = mapTeam(*p.Team)
	}

	if players.KindFor(base.Position) == players.StatKindPitching {
		return players.NewPitcher(base, players.PitchingStats{
			ERA:            p.ERA,
			Wins:           intOrZero(p.Wins),
			Losses:         intOrZero(p.Losses),
			Saves:          intOrZero(p.Saves),
			Holds:          intOrZero(p.Holds),
			InningsPitched: intOrZero(p.InningsPitched),
			Strikeouts:     intOrZero(p.Strikeouts),
			Walks:          intOrZero(p.Walks),
			QualityStarts:  intOrZero(p.QualityStarts),
			CompleteGames:  intOrZero(p.CompleteGames),
		})
	}
	return players.NewBatter(base, players.BattingStats{
		Games:              intOrZero(p.Games),
		AtBats:             intOrZero(p.AtBats),
		Hits:               intOrZero(p.Hits),
		HomeRuns:           intOrZero(p.HomeRuns),
		RBI:                intOrZero(p.RBI),
		Runs:               intOrZero(p.Runs),
		StolenBases:        intOrZero(p.StolenBases),
		BattingAverage:     p.BattingAverage,
		OnBasePercentage:   p.OnBasePercentage,
		SluggingPercentage: p.SluggingPercentage,
		OPS:                p.OPS,
	})
}

func mapPlayers(items []playerResponse) []players.Player {
	out := make([]players.Player, 0, len(items))
	for _, p := range items {
		out = append(out, mapPlayer(p))
	}
	return out
}

func mapStatus(raw string) games.GameStatus {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if status, ok := games.ParseStatus(normalized); ok {
		return status
	}
	// Unknown codes pass through so display code can fall back explicitly.
	return games.GameStatus(raw)
}

func mapGame(g gameResponse) (games.Game, error) {
	gameDate, err := timeutil.ParseTimestamp(g.GameDate)
	if err != nil {
		return games.Game{}, fmt.Errorf("game %d: %w", g.ID, err)
	}
	status := mapStatus(g.Status)
	game := games.Game{
		ID:            g.ID,
		HomeTeam:      mapTeam(g.HomeTeam),
		AwayTeam:      mapTeam(g.AwayTeam),
		GameDate:      gameDate,
		Stadium:       g.Stadium,
		Status:        status,
		CurrentInning: g.CurrentInning,
		TopBottom:     g.TopBottom,
	}
	if status.HasScore() {
		game.HomeScore = g.HomeScore
		game.AwayScore = g.AwayScore
	}
	if len(g.InningScores) > 0 {
		game.InningScores = mapInnings(g.InningScores, g.ID)
	}
	return game, nil
}

func mapGames(items []gameResponse) ([]games.Game, error) {
	out := make([]games.Game, 0, len(items))
	for _, g := range items {
		game, err := mapGame(g)
		if err != nil {
			return nil, err
		}
		out = append(out, game)
	}
	return out, nil
}

func mapInning(in inningResponse, fallbackGameID int64) games.InningScore {
	gameID := fallbackGameID
	switch {
	case in.GameID != nil:
		gameID = *in.GameID
	case in.Game != nil:
		gameID = in.Game.ID
	}
	inning := intOrZero(in.InningNumber)
	if in.Inning != nil {
		inning = *in.Inning
	}
	return games.InningScore{
		ID:         in.ID,
		GameID:     gameID,
		Inning:     inning,
		Top:        firstBool(in.Top, in.TopInning, in.IsTopInning),
		Score:      intOrZero(in.Score),
		Hits:       intOrZero(in.Hits),
		Errors:     intOrZero(in.Errors),
		LeftOnBase: intOrZero(in.LeftOnBase),
	}
}

func mapInnings(items []inningResponse, gameID int64) []games.InningScore {
	out := make([]games.InningScore, 0, len(items))
	for _, in := range items {
		out = append(out, mapInning(in, gameID))
	}
	return games.SortInnings(out)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func firstBool(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}
