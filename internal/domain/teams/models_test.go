package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"LogoURL", "logoUrl,omitempty"},
		{"WinningPercentage", "winningPercentage,omitempty"},
		{"TeamBattingAverage", "teamBattingAverage,omitempty"},
		{"TeamERA", "teamEra,omitempty"},
		{"HomeRuns", "homeRuns"},
	}

	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestGamesPlayedSumsRecord(t *testing.T) {
	team := Team{Wins: 80, Losses: 60, Draws: 4}
	if got := team.GamesPlayed(); got != 144 {
		t.Fatalf("expected 144 games played, got %d", got)
	}
}

func TestValidWinningPercentage(t *testing.T) {
	pct := func(v float64) *float64 { return &v }

	cases := []struct {
		name string
		team Team
		want bool
	}{
		{"absent", Team{}, true},
		{"in range", Team{WinningPercentage: pct(0.571)}, true},
		{"upper bound", Team{WinningPercentage: pct(1)}, true},
		{"negative", Team{WinningPercentage: pct(-0.1)}, false},
		{"above one", Team{WinningPercentage: pct(1.2)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.team.Valid(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestStreakSign(t *testing.T) {
	if got := (Team{ConsecutiveWins: 3}).Streak(); got != 3 {
		t.Fatalf("expected +3, got %d", got)
	}
	if got := (Team{ConsecutiveLosses: 2}).Streak(); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
}
