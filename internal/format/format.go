// Package format renders raw stats and timestamps as Korean display strings.
package format

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

// Placeholders for absent values.
const (
	AveragePlaceholder = ".000"
	ERAPlaceholder     = "0.00"
	ScorePlaceholder   = "-"
	UnknownStatusLabel = "알 수 없음"
)

var statusLabels = map[games.GameStatus]string{
	games.StatusScheduled:  "예정",
	games.StatusInProgress: "진행중",
	games.StatusCompleted:  "종료",
	games.StatusPostponed:  "연기",
	games.StatusCanceled:   "취소",
}

var weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

var printer = message.NewPrinter(language.Korean)

// BattingAverage renders a rate with three decimals.
func BattingAverage(v *float64) string {
	return fixed(v, 3, AveragePlaceholder)
}

// WinningPercentage renders a team's winning percentage with three decimals.
func WinningPercentage(v *float64) string {
	return fixed(v, 3, AveragePlaceholder)
}

// ERA renders an earned run average with two decimals.
func ERA(v *float64) string {
	return fixed(v, 2, ERAPlaceholder)
}

func fixed(v *float64, decimals int, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// GameDate renders the KST calendar date, e.g. "2024년 5월 1일 (수)".
func GameDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	k := t.In(timeutil.KST)
	return fmt.Sprintf("%d년 %d월 %d일 (%s)", k.Year(), int(k.Month()), k.Day(), weekdays[k.Weekday()])
}

// GameTime renders the KST start time on a 12-hour clock, e.g. "오후 06:30".
func GameTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	k := t.In(timeutil.KST)
	meridiem := "오전"
	if k.Hour() >= 12 {
		meridiem = "오후"
	}
	hour := k.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%s %02d:%02d", meridiem, hour, k.Minute())
}

// GameStatusText returns the Korean label for a status.
func GameStatusText(s games.GameStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return UnknownStatusLabel
}

// PositionText returns the Korean label for a Korean or English position name.
// Unrecognised input is returned as given.
func PositionText(raw string) string {
	if pos, ok := players.ParsePosition(raw); ok {
		return pos.Label()
	}
	return raw
}

// Count groups digits the Korean way, e.g. 12,345.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Score renders a run total, or "-" when the game has none yet.
func Score(v *int) string {
	if v == nil {
		return ScorePlaceholder
	}
	return strconv.Itoa(*v)
}
