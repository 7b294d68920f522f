package players

import (
	"strings"

	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
)

// Position is the normalized fielding position.
type Position string

const (
	PositionPitcher    Position = "pitcher"
	PositionCatcher    Position = "catcher"
	PositionInfielder  Position = "infielder"
	PositionOutfielder Position = "outfielder"
)

var positionLabels = map[Position]string{
	PositionPitcher:    "투수",
	PositionCatcher:    "포수",
	PositionInfielder:  "내야수",
	PositionOutfielder: "외야수",
}

// ParsePosition accepts the Korean labels the backend stores as well as English names.
func ParsePosition(raw string) (Position, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for pos, label := range positionLabels {
		if value == string(pos) || value == label {
			return pos, true
		}
	}
	return "", false
}

// Label returns the Korean display label, or the raw value when unknown.
func (p Position) Label() string {
	if label, ok := positionLabels[p]; ok {
		return label
	}
	return string(p)
}

// StatKind tags which statistic subset a player carries.
type StatKind string

const (
	StatKindBatting  StatKind = "batting"
	StatKindPitching StatKind = "pitching"
)

// KindFor returns the stat subset a position reports. Only pitchers report pitching lines.
func KindFor(p Position) StatKind {
	if p == PositionPitcher {
		return StatKindPitching
	}
	return StatKindBatting
}

// BattingStats holds a hitter's season line.
type BattingStats struct {
	Games              int      `json:"games"`
	AtBats             int      `json:"atBats"`
	Hits               int      `json:"hits"`
	HomeRuns           int      `json:"homeRuns"`
	RBI                int      `json:"rbi"`
	Runs               int      `json:"runs"`
	StolenBases        int      `json:"stolenBases"`
	BattingAverage     *float64 `json:"battingAverage,omitempty"`
	OnBasePercentage   *float64 `json:"onBasePercentage,omitempty"`
	SluggingPercentage *float64 `json:"sluggingPercentage,omitempty"`
	OPS                *float64 `json:"ops,omitempty"`
}

// PitchingStats holds a pitcher's season line.
type PitchingStats struct {
	ERA            *float64 `json:"era,omitempty"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	Saves          int      `json:"saves"`
	Holds          int      `json:"holds"`
	InningsPitched int      `json:"inningsPitched"`
	Strikeouts     int      `json:"strikeouts"`
	Walks          int      `json:"walks"`
	QualityStarts  int      `json:"qualityStarts"`
	CompleteGames  int      `json:"completeGames"`
}

// Player is a rostered KBO player. Exactly one of Batting or Pitching is set, matching Kind.
type Player struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Position        Position       `json:"position"`
	Number          *int           `json:"number,omitempty"`
	Team            teams.Team     `json:"team"`
	BirthDate       string         `json:"birthDate,omitempty"`
	Height          int            `json:"height,omitempty"`
	Weight          int            `json:"weight,omitempty"`
	ProfileImageURL string         `json:"profileImageUrl,omitempty"`
	Kind            StatKind       `json:"kind"`
	Batting         *BattingStats  `json:"batting,omitempty"`
	Pitching        *PitchingStats `json:"pitching,omitempty"`
}

// NewBatter builds a player carrying batting stats only.
func NewBatter(p Player, stats BattingStats) Player {
	p.Kind = StatKindBatting
	p.Batting = &stats
	p.Pitching = nil
	return p
}

// NewPitcher builds a player carrying pitching stats only.
func NewPitcher(p Player, stats PitchingStats) Player {
	p.Kind = StatKindPitching
	p.Pitching = &stats
	p.Batting = nil
	return p
}

// Valid reports whether the stat payload matches Kind and only one subset is present.
func (p Player) Valid() bool {
	switch p.Kind {
	case StatKindBatting:
		return p.Batting != nil && p.Pitching == nil
	case StatKindPitching:
		return p.Pitching != nil && p.Batting == nil
	default:
		return false
	}
}
