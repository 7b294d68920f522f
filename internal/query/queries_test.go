package query

import (
	"context"
	"testing"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/providers/fixture"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

func newTestQueries(t *testing.T) (*Queries, *testClock) {
	t.Helper()
	c, clock, _ := newTestCache(t)
	return NewQueries(c, fixture.NewAt(clock.Now)), clock
}

func TestQueriesDisabledWithoutIdentifiers(t *testing.T) {
	q, _ := newTestQueries(t)
	ctx := context.Background()

	if r := q.Player(ctx, 0); r.Status != StatusIdle {
		t.Fatalf("expected idle player lookup, got %s", r.Status)
	}
	if r := q.GamesByDate(ctx, "  "); r.Status != StatusIdle {
		t.Fatalf("expected idle date lookup, got %s", r.Status)
	}
	if r := q.PlayersByPosition(ctx, ""); r.Status != StatusIdle {
		t.Fatalf("expected idle position lookup, got %s", r.Status)
	}
	if r := q.GamesByStatus(ctx, ""); r.Status != StatusIdle {
		t.Fatalf("expected idle status lookup, got %s", r.Status)
	}
	if r := q.InningScores(ctx, 0); r.Status != StatusIdle {
		t.Fatalf("expected idle innings lookup, got %s", r.Status)
	}
}

func TestQueriesRoundTripTaggedPlayers(t *testing.T) {
	q, _ := newTestQueries(t)
	ctx := context.Background()

	first := q.Players(ctx)
	second := q.Players(ctx)
	if !second.Ready() || len(second.Data) != len(first.Data) {
		t.Fatalf("unexpected cached players %+v", second)
	}
	for _, p := range second.Data {
		if !p.Valid() {
			t.Fatalf("player %d lost its stat tag through the cache", p.ID)
		}
		if p.Kind == players.StatKindPitching && p.Pitching.ERA == nil {
			t.Fatalf("pitcher %d lost ERA", p.ID)
		}
	}
}

func TestQueriesGameKeepsKSTInstant(t *testing.T) {
	q, clock := newTestQueries(t)
	ctx := context.Background()

	today := timeutil.Today(clock.Now())
	res := q.GamesByDate(ctx, today)
	if !res.Ready() || len(res.Data) == 0 {
		t.Fatalf("expected games today, got %+v", res)
	}
	cached := q.GamesByDate(ctx, today)
	if !cached.Data[0].GameDate.Equal(res.Data[0].GameDate) {
		t.Fatalf("expected game date to survive the cache")
	}
}

func TestQueriesGameNotFound(t *testing.T) {
	q, _ := newTestQueries(t)
	res := q.Game(context.Background(), 404)
	if res.Status != StatusError || res.HasData {
		t.Fatalf("expected error without data, got %+v", res)
	}
}

func TestRefreshGamesLeavesOtherFamilies(t *testing.T) {
	q, _ := newTestQueries(t)
	ctx := context.Background()

	_ = q.Games(ctx)
	_ = q.InningScores(ctx, 1001)
	_ = q.GamesByStatus(ctx, games.StatusInProgress)
	_ = q.Standings(ctx)
	_ = q.Players(ctx)

	if err := q.RefreshGames(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := q.Cache().store
	for _, key := range []Key{GamesKey(), InningScoresKey(1001), GamesByStatusKey(games.StatusInProgress)} {
		if _, ok, _ := st.Get(ctx, key.String()); ok {
			t.Fatalf("expected %s invalidated", key)
		}
	}
	for _, key := range []Key{StandingsKey(), PlayersKey()} {
		if _, ok, _ := st.Get(ctx, key.String()); !ok {
			t.Fatalf("expected %s to survive", key)
		}
	}
}

func TestRefreshAllClearsEverything(t *testing.T) {
	q, _ := newTestQueries(t)
	ctx := context.Background()
	_ = q.Teams(ctx)
	_ = q.TopPitchers(ctx)

	if err := q.RefreshAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := q.Cache().store.Get(ctx, TeamsKey().String()); ok {
		t.Fatalf("expected teams cleared")
	}
}

func TestRefreshPlayersAndTeams(t *testing.T) {
	q, _ := newTestQueries(t)
	ctx := context.Background()
	_ = q.Players(ctx)
	_ = q.Team(ctx, 1)

	_ = q.RefreshPlayers(ctx)
	if _, ok, _ := q.Cache().store.Get(ctx, PlayersKey().String()); ok {
		t.Fatalf("expected players cleared")
	}
	if _, ok, _ := q.Cache().store.Get(ctx, TeamKey(1).String()); !ok {
		t.Fatalf("expected team to survive a players refresh")
	}
	_ = q.RefreshTeams(ctx)
	if _, ok, _ := q.Cache().store.Get(ctx, TeamKey(1).String()); ok {
		t.Fatalf("expected team cleared")
	}
}
