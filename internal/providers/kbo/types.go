package kbo

type teamResponse struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Stadium            string   `json:"stadium"`
	LogoURL            string   `json:"logoUrl"`
	FoundedYear        string   `json:"foundedYear"`
	Games              *int     `json:"games"`
	Wins               *int     `json:"wins"`
	Losses             *int     `json:"losses"`
	Draws              *int     `json:"draws"`
	WinningPercentage  *float64 `json:"winningPercentage"`
	ConsecutiveWins    *int     `json:"consecutiveWins"`
	ConsecutiveLosses  *int     `json:"consecutiveLosses"`
	HomeRuns           *int     `json:"homeRuns"`
	TeamBattingAverage *float64 `json:"teamBattingAverage"`
	TeamERA            *float64 `json:"teamEra"`
}

type playerResponse struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Position        string        `json:"position"`
	Number          *int          `json:"number"`
	Team            *teamResponse `json:"team"`
	BirthDate       string        `json:"birthDate"`
	Height          *int          `json:"height"`
	Weight          *int          `json:"weight"`
	ProfileImageURL string        `json:"profileImageUrl"`

	Games              *int     `json:"games"`
	AtBats             *int     `json:"atBats"`
	Hits               *int     `json:"hits"`
	HomeRuns           *int     `json:"homeRuns"`
	RBI                *int     `json:"rbi"`
	Runs               *int     `json:"runs"`
	StolenBases        *int     `json:"stolenBases"`
	BattingAverage     *float64 `json:"battingAverage"`
	OnBasePercentage   *float64 `json:"onBasePercentage"`
	SluggingPercentage *float64 `json:"sluggingPercentage"`
	OPS                *float64 `json:"ops"`

	Wins           *int     `json:"wins"`
	Losses         *int     `json:"losses"`
	ERA            *float64 `json:"era"`
	InningsPitched *int     `json:"inningsPitched"`
	Strikeouts     *int     `json:"strikeouts"`
	Walks          *int     `json:"walks"`
	Saves          *int     `json:"saves"`
	Holds          *int     `json:"holds"`
	QualityStarts  *int     `json:"qualityStarts"`
	CompleteGames  *int     `json:"completeGames"`
}

type gameRef struct {
	ID int64 `json:"id"`
}

type inningResponse struct {
	ID           int64    `json:"id"`
	GameID       *int64   `json:"gameId"`
	Game         *gameRef `json:"game"`
	Inning       *int     `json:"inning"`
	InningNumber *int     `json:"inningNumber"`
	Top          *bool    `json:"top"`
	TopInning    *bool    `json:"topInning"`
	IsTopInning  *bool    `json:"isTopInning"`
	Score        *int     `json:"score"`
	Hits         *int     `json:"hits"`
	Errors       *int     `json:"errors"`
	LeftOnBase   *int     `json:"leftOnBase"`
}

type gameResponse struct {
	ID            int64            `json:"id"`
	HomeTeam      teamResponse     `json:"homeTeam"`
	AwayTeam      teamResponse     `json:"awayTeam"`
	GameDate      string           `json:"gameDate"`
	Stadium       string           `json:"stadium"`
	HomeScore     *int             `json:"homeScore"`
	AwayScore     *int             `json:"awayScore"`
	Status        string           `json:"status"`
	CurrentInning string           `json:"currentInning"`
	TopBottom     string           `json:"topBottom"`
	InningScores  []inningResponse `json:"inningScores"`
}
