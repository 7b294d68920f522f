package teams

// Team represents a KBO club with its season aggregates.
// Kept in its own package so players and games can embed it without import cycles.
type Team struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Stadium            string   `json:"stadium,omitempty"`
	LogoURL            string   `json:"logoUrl,omitempty"`
	FoundedYear        string   `json:"foundedYear,omitempty"`
	Games              int      `json:"games"`
	Wins               int      `json:"wins"`
	Losses             int      `json:"losses"`
	Draws              int      `json:"draws"`
	WinningPercentage  *float64 `json:"winningPercentage,omitempty"`
	ConsecutiveWins    int      `json:"consecutiveWins"`
	ConsecutiveLosses  int      `json:"consecutiveLosses"`
	TeamBattingAverage *float64 `json:"teamBattingAverage,omitempty"`
	TeamERA            *float64 `json:"teamEra,omitempty"`
	HomeRuns           int      `json:"homeRuns"`
}

// GamesPlayed is wins + losses + draws.
func (t Team) GamesPlayed() int {
	return t.Wins + t.Losses + t.Draws
}

// Valid reports whether the winning percentage, when present, lies in [0,1].
func (t Team) Valid() bool {
	if t.WinningPercentage == nil {
		return true
	}
	pct := *t.WinningPercentage
	return pct >= 0 && pct <= 1
}

// Streak returns a signed streak: positive for consecutive wins, negative for losses.
func (t Team) Streak() int {
	if t.ConsecutiveWins > 0 {
		return t.ConsecutiveWins
	}
	return -t.ConsecutiveLosses
}
