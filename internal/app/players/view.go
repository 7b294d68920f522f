package players

import (
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/format"
)

// TeamRef is the team a player belongs to.
type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BattingView is a hitter's formatted season line.
type BattingView struct {
	Games              int    `json:"games"`
	AtBats             string `json:"atBats"`
	Hits               string `json:"hits"`
	HomeRuns           int    `json:"homeRuns"`
	RBI                int    `json:"rbi"`
	Runs               int    `json:"runs"`
	StolenBases        int    `json:"stolenBases"`
	BattingAverage     string `json:"battingAverage"`
	OnBasePercentage   string `json:"onBasePercentage"`
	SluggingPercentage string `json:"sluggingPercentage"`
	OPS                string `json:"ops"`
}

// PitchingView is a pitcher's formatted season line.
type PitchingView struct {
	ERA            string `json:"era"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Saves          int    `json:"saves"`
	Holds          int    `json:"holds"`
	InningsPitched string `json:"inningsPitched"`
	Strikeouts     string `json:"strikeouts"`
	Walks          int    `json:"walks"`
	QualityStarts  int    `json:"qualityStarts"`
	CompleteGames  int    `json:"completeGames"`
}

// PlayerView is a player ready for display. Exactly one of Batting or Pitching is set.
type PlayerView struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Position        players.Position `json:"position"`
	PositionText    string           `json:"positionText"`
	Number          *int             `json:"number,omitempty"`
	Team            TeamRef          `json:"team"`
	BirthDate       string           `json:"birthDate,omitempty"`
	Height          int              `json:"height,omitempty"`
	Weight          int              `json:"weight,omitempty"`
	ProfileImageURL string           `json:"profileImageUrl,omitempty"`
	Kind            players.StatKind `json:"kind"`
	Batting         *BattingView     `json:"batting,omitempty"`
	Pitching        *PitchingView    `json:"pitching,omitempty"`
}

// Render formats a player for display.
func Render(p players.Player) PlayerView {
	v := PlayerView{
		ID:              p.ID,
		Name:            p.Name,
		Position:        p.Position,
		PositionText:    format.PositionText(string(p.Position)),
		Number:          p.Number,
		Team:            TeamRef{ID: p.Team.ID, Name: p.Team.Name},
		BirthDate:       p.BirthDate,
		Height:          p.Height,
		Weight:          p.Weight,
		ProfileImageURL: p.ProfileImageURL,
		Kind:            p.Kind,
	}
	switch {
	case p.Pitching != nil:
		s := p.Pitching
		v.Pitching = &PitchingView{
			ERA:            format.ERA(s.ERA),
			Wins:           s.Wins,
			Losses:         s.Losses,
			Saves:          s.Saves,
			Holds:          s.Holds,
			InningsPitched: format.Count(s.InningsPitched),
			Strikeouts:     format.Count(s.Strikeouts),
			Walks:          s.Walks,
			QualityStarts:  s.QualityStarts,
			CompleteGames:  s.CompleteGames,
		}
	case p.Batting != nil:
		s := p.Batting
		v.Batting = &BattingView{
			Games:              s.Games,
			AtBats:             format.Count(s.AtBats),
			Hits:               format.Count(s.Hits),
			HomeRuns:           s.HomeRuns,
			RBI:                s.RBI,
			Runs:               s.Runs,
			StolenBases:        s.StolenBases,
			BattingAverage:     format.BattingAverage(s.BattingAverage),
			OnBasePercentage:   format.BattingAverage(s.OnBasePercentage),
			SluggingPercentage: format.BattingAverage(s.SluggingPercentage),
			OPS:                format.BattingAverage(s.OPS),
		}
	}
	return v
}

// RenderList formats a list of players.
func RenderList(items []players.Player) []PlayerView {
	out := make([]PlayerView, 0, len(items))
	for _, p := range items {
		out = append(out, Render(p))
	}
	return out
}
