package games

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/testutil"
	"github.com/kbostats/kbo-stats-service/internal/timeutil"
)

func newService() (*Service, *testutil.StubProvider) {
	q, provider := testutil.NewQueries(testutil.DefaultNow)
	svc := NewService(q)
	svc.now = testutil.NowAt(testutil.DefaultNow)
	return svc, provider
}

func TestServiceTodayRendersKoreanDateAndScores(t *testing.T) {
	svc, _ := newService()
	section := svc.Today(context.Background())
	if section.Status != query.StatusReady || section.Data == nil {
		t.Fatalf("unexpected section %+v", section)
	}
	list := *section.Data
	if len(list) != 2 {
		t.Fatalf("expected 2 games today, got %d", len(list))
	}
	live := list[0]
	if live.Date != "2024년 5월 1일 (수)" || live.Time != "오후 06:30" {
		t.Fatalf("unexpected date/time %s %s", live.Date, live.Time)
	}
	if live.StatusText != "진행중" || live.HomeScore != "3" || live.AwayScore != "1" {
		t.Fatalf("unexpected live game %+v", live)
	}
	scheduled := list[1]
	if scheduled.HomeScore != "-" || scheduled.StatusText != "예정" {
		t.Fatalf("expected placeholders for scheduled game, got %+v", scheduled)
	}
}

func TestServiceGamesFilters(t *testing.T) {
	svc, provider := newService()
	ctx := context.Background()

	byStatus, err := svc.Games(ctx, Filter{Status: "COMPLETED"})
	if err != nil || byStatus.Data == nil || len(*byStatus.Data) != 1 {
		t.Fatalf("unexpected status filter result %+v %v", byStatus, err)
	}
	if _, err := svc.Games(ctx, Filter{Status: "FINISHED"}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if _, err := svc.Games(ctx, Filter{Date: "05/01/2024"}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if provider.Calls(testutil.MethodGamesByDate) != 0 {
		t.Fatalf("expected invalid date to skip the backend")
	}
	all, err := svc.Games(ctx, Filter{})
	if err != nil || all.Data == nil || len(*all.Data) != 5 {
		t.Fatalf("unexpected unfiltered result %+v %v", all, err)
	}
}

func TestServiceDetailNotFound(t *testing.T) {
	svc, _ := newService()
	detail := svc.Detail(context.Background(), 999999)
	if !detail.Game.NotFound() {
		t.Fatalf("expected not found game, got %+v", detail.Game)
	}
	if detail.Innings.Failed() {
		t.Fatalf("expected innings to load independently")
	}
}

func TestServiceDetailLoadsInnings(t *testing.T) {
	svc, _ := newService()
	detail := svc.Detail(context.Background(), 1001)
	if detail.Game.Failed() || detail.Innings.Data == nil {
		t.Fatalf("unexpected detail %+v", detail)
	}
	innings := *detail.Innings.Data
	if innings[0].Inning != 1 || innings[0].Half != "top" || innings[1].Half != "bottom" {
		t.Fatalf("unexpected inning order %+v", innings[:2])
	}
}

func TestServiceUpcomingAndSchedule(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	if up := svc.Upcoming(ctx); up.Data == nil || len(*up.Data) != 2 {
		t.Fatalf("unexpected upcoming %+v", up)
	}
	if sched := svc.Schedule(ctx, 4); sched.Data == nil || len(*sched.Data) != 3 {
		t.Fatalf("unexpected schedule %+v", sched)
	}
}

func TestRenderUnknownStatus(t *testing.T) {
	v := Render(games.Game{
		ID:       1,
		HomeTeam: teams.Team{ID: 1, Name: "LG 트윈스"},
		GameDate: time.Date(2024, 5, 1, 18, 30, 0, 0, timeutil.KST),
		Status:   "SUSPENDED",
	})
	if v.StatusText != "알 수 없음" || v.HomeTeam.Name != "LG 트윈스" {
		t.Fatalf("unexpected view %+v", v)
	}
}

func TestRenderInningsDedupes(t *testing.T) {
	out := RenderInnings([]games.InningScore{
		{GameID: 1, Inning: 2, Top: true, Score: 1},
		{GameID: 1, Inning: 1, Top: false, Score: 0},
		{GameID: 1, Inning: 1, Top: false, Score: 2},
	})
	if len(out) != 2 || out[0].Inning != 1 || out[0].Score != 2 {
		t.Fatalf("unexpected innings %+v", out)
	}
}
