package store

import (
	"encoding/json"
	"strings"
	"time"
)

// KeySeparator joins cache key segments.
const KeySeparator = ":"

// Entry is one cached query result: the JSON-encoded value and when it was fetched.
type Entry struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Age reports how long ago the entry was fetched.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// matchesPrefix reports whether key equals prefix or sits beneath it on a segment boundary,
// so "games:1" matches "games:1:innings" but not "games:10".
func matchesPrefix(key, prefix string) bool {
	if prefix == "" {
		return true
	}
	return key == prefix || strings.HasPrefix(key, prefix+KeySeparator)
}
