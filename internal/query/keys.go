package query

import (
	"strconv"
	"strings"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/store"
)

// Key identifies a cached resource as an ordered list of segments. Keys sharing leading
// segments form a family that can be invalidated together.
type Key []string

// Family roots.
const (
	FamilyPlayers = "players"
	FamilyTeams   = "teams"
	FamilyGames   = "games"
)

// String joins segments into the store key.
func (k Key) String() string {
	return strings.Join(k, store.KeySeparator)
}

// HasPrefix reports whether prefix matches k segment by segment.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func PlayersKey() Key                         { return Key{FamilyPlayers} }
func PlayerKey(playerID int64) Key            { return Key{FamilyPlayers, id(playerID)} }
func PlayersByTeamKey(teamID int64) Key       { return Key{FamilyPlayers, "team", id(teamID)} }
func PlayersByPositionKey(pos string) Key     { return Key{FamilyPlayers, "position", pos} }
func TopPitchersKey() Key                     { return Key{FamilyPlayers, "top-pitchers"} }
func TopHittersByAverageKey() Key             { return Key{FamilyPlayers, "top-hitters", "average"} }
func TopHittersByHomeRunsKey() Key            { return Key{FamilyPlayers, "top-hitters", "home-runs"} }
func TeamsKey() Key                           { return Key{FamilyTeams} }
func TeamKey(teamID int64) Key                { return Key{FamilyTeams, id(teamID)} }
func StandingsKey() Key                       { return Key{FamilyTeams, "standings"} }
func GamesKey() Key                           { return Key{FamilyGames} }
func GameKey(gameID int64) Key                { return Key{FamilyGames, id(gameID)} }
func GamesByDateKey(date string) Key          { return Key{FamilyGames, "date", date} }
func GamesByTeamKey(teamID int64) Key         { return Key{FamilyGames, "team", id(teamID)} }
func UpcomingGamesKey() Key                   { return Key{FamilyGames, "upcoming"} }
func GamesByStatusKey(s games.GameStatus) Key { return Key{FamilyGames, "status", string(s)} }
func InningScoresKey(gameID int64) Key        { return Key{FamilyGames, id(gameID), "innings"} }
