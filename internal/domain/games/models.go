package games

import (
	"sort"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
)

// GameStatus mirrors the backend's game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusCompleted  GameStatus = "COMPLETED"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Statuses lists every known status in lifecycle order.
var Statuses = []GameStatus{StatusScheduled, StatusInProgress, StatusCompleted, StatusPostponed, StatusCanceled}

// ParseStatus validates a raw status code.
func ParseStatus(raw string) (GameStatus, bool) {
	for _, s := range Statuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// HasScore reports whether a game in this status carries a score.
func (s GameStatus) HasScore() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// InningScore is one half-inning line for a game.
type InningScore struct {
	ID         int64 `json:"id"`
	GameID     int64 `json:"gameId"`
	Inning     int   `json:"inning"`
	Top        bool  `json:"top"`
	Score      int   `json:"score"`
	Hits       int   `json:"hits"`
	Errors     int   `json:"errors"`
	LeftOnBase int   `json:"leftOnBase"`
}

// Game is a scheduled or played KBO game.
type Game struct {
	ID            int64         `json:"id"`
	HomeTeam      teams.Team    `json:"homeTeam"`
	AwayTeam      teams.Team    `json:"awayTeam"`
	GameDate      time.Time     `json:"gameDate"`
	Stadium       string        `json:"stadium,omitempty"`
	HomeScore     *int          `json:"homeScore,omitempty"`
	AwayScore     *int          `json:"awayScore,omitempty"`
	Status        GameStatus    `json:"status"`
	CurrentInning string        `json:"currentInning,omitempty"`
	TopBottom     string        `json:"topBottom,omitempty"`
	InningScores  []InningScore `json:"inningScores,omitempty"`
}

// SortInnings orders half-innings by (inning, top before bottom) and keeps the last
// entry seen for any duplicated (game, inning, half).
func SortInnings(items []InningScore) []InningScore {
	type slot struct {
		game   int64
		inning int
		top    bool
	}
	index := make(map[slot]int, len(items))
	out := make([]InningScore, 0, len(items))
	for _, it := range items {
		k := slot{game: it.GameID, inning: it.Inning, top: it.Top}
		if i, ok := index[k]; ok {
			out[i] = it
			continue
		}
		index[k] = len(out)
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Inning != out[j].Inning {
			return out[i].Inning < out[j].Inning
		}
		return out[i].Top && !out[j].Top
	})
	return out
}
