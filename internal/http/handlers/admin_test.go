package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbostats/kbo-stats-service/internal/app/realtime"
	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/testutil"
)

type stubRefresher struct {
	calls map[string]int
	err   error
}

func newStubRefresher() *stubRefresher {
	return &stubRefresher{calls: make(map[string]int)}
}

func (s *stubRefresher) record(family string) error {
	s.calls[family]++
	return s.err
}

func (s *stubRefresher) RefreshPlayers(context.Context) error { return s.record(FamilyPlayers) }
func (s *stubRefresher) RefreshTeams(context.Context) error   { return s.record(FamilyTeams) }
func (s *stubRefresher) RefreshGames(context.Context) error   { return s.record(FamilyGames) }
func (s *stubRefresher) RefreshAll(context.Context) error     { return s.record(FamilyAll) }

func adminRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRequiresAuth(t *testing.T) {
	h := NewAdminHandler(nil, newStubRefresher(), "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh", "wrong"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.ServeRequest(http.HandlerFunc(h.RealTimeUpdate), adminRequest("/admin/real-time-update", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminEmptyTokenRejectsEverything(t *testing.T) {
	h := NewAdminHandler(nil, newStubRefresher(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/cache/refresh", nil)
	req.Header.Set("Authorization", "Bearer ")

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshCacheFamilies(t *testing.T) {
	refresher := newStubRefresher()
	h := NewAdminHandler(nil, refresher, "secret", nil)

	for _, family := range []string{FamilyPlayers, FamilyTeams, FamilyGames, FamilyAll} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh?family="+family, "secret"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		if refresher.calls[family] != 1 {
			t.Fatalf("expected %s refreshed once, got %d", family, refresher.calls[family])
		}
	}

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if refresher.calls[FamilyAll] != 2 {
		t.Fatalf("expected missing family to mean all")
	}
}

func TestAdminRefreshCacheRejectsUnknownFamily(t *testing.T) {
	refresher := newStubRefresher()
	h := NewAdminHandler(nil, refresher, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh?family=umpires", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	if len(refresher.calls) != 0 {
		t.Fatalf("expected no refresh, got %+v", refresher.calls)
	}
}

func TestAdminRefreshCacheFailure(t *testing.T) {
	refresher := newStubRefresher()
	refresher.err = errors.New("redis down")
	h := NewAdminHandler(nil, refresher, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh?family=games", "secret"))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestAdminRealTimeUpdateSuccessRefreshesGames(t *testing.T) {
	provider := testutil.NewStubProvider(testutil.DefaultNow)
	refresher := newStubRefresher()
	h := NewAdminHandler(realtime.NewService(provider, refresher, nil), refresher, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RealTimeUpdate), adminRequest("/admin/real-time-update", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var out realtime.Outcome
	testutil.DecodeJSON(t, rr, &out)
	if !out.OK() || !out.Refreshed {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if refresher.calls[FamilyGames] != 1 || refresher.calls[FamilyAll] != 0 {
		t.Fatalf("expected only games refreshed, got %+v", refresher.calls)
	}
	if provider.Calls(testutil.MethodRealTimeUpdate) != 1 {
		t.Fatalf("expected exactly one backend call")
	}
}

func TestAdminRealTimeUpdateFailureIsBadGateway(t *testing.T) {
	provider := testutil.NewStubProvider(testutil.DefaultNow)
	provider.Fail(testutil.MethodRealTimeUpdate, &providers.RequestError{Resource: "real-time-update", StatusCode: http.StatusInternalServerError})
	refresher := newStubRefresher()
	h := NewAdminHandler(realtime.NewService(provider, refresher, nil), refresher, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RealTimeUpdate), adminRequest("/admin/real-time-update", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)

	var out realtime.Outcome
	testutil.DecodeJSON(t, rr, &out)
	if out.Status != providers.UpdateError || out.Message == "" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if len(refresher.calls) != 0 {
		t.Fatalf("expected cache untouched on failure")
	}
	if provider.Calls(testutil.MethodRealTimeUpdate) != 1 {
		t.Fatalf("expected no retry")
	}
}

func TestAdminRealTimeUpdateNotConfigured(t *testing.T) {
	h := NewAdminHandler(nil, nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RealTimeUpdate), adminRequest("/admin/real-time-update", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	rr = testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest("/admin/cache/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
