package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// localDateTimeLayouts are the zoneless timestamp shapes the KBO backend emits.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// KST is Korea Standard Time. Korea observes no daylight saving, so a fixed zone is exact
// and does not depend on tzdata being installed.
var KST = time.FixedZone("KST", 9*60*60)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns today's date in KST as YYYY-MM-DD.
func Today(now time.Time) string {
	return FormatDate(now.In(KST))
}

// ParseTimestamp parses a backend timestamp. RFC3339 values keep their offset; zoneless
// values are interpreted as KST.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, KST); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(DateLayout, value, KST); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("timeutil: unrecognized timestamp %q", value)
}
