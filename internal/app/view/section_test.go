package view

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/query"
)

func TestFromReadyResult(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := From(query.Result[int]{Status: query.StatusReady, Data: 7, HasData: true, FetchedAt: at}, strconv.Itoa)
	if s.Status != query.StatusReady || s.Data == nil || *s.Data != "7" {
		t.Fatalf("unexpected section %+v", s)
	}
	if s.FetchedAt == nil || !s.FetchedAt.Equal(at) {
		t.Fatalf("expected fetchedAt to be set")
	}
	if s.Failed() || s.Err() != nil {
		t.Fatalf("expected no failure")
	}
}

func TestFromIdleResultHasNoData(t *testing.T) {
	s := From(query.Result[int]{Status: query.StatusIdle}, strconv.Itoa)
	if s.Data != nil || s.FetchedAt != nil || s.Error != "" {
		t.Fatalf("expected empty idle section, got %+v", s)
	}
}

func TestFromErrorKeepsStaleData(t *testing.T) {
	err := errors.New("backend down")
	s := From(query.Result[int]{Status: query.StatusError, Err: err, Data: 3, HasData: true, Stale: true}, strconv.Itoa)
	if !s.Failed() || s.Error != "backend down" || !s.Stale || *s.Data != "3" {
		t.Fatalf("unexpected section %+v", s)
	}
	if !errors.Is(s.Err(), err) {
		t.Fatalf("expected underlying error")
	}
}

func TestNotFound(t *testing.T) {
	err := &providers.RequestError{Resource: "game", StatusCode: 404}
	s := From(query.Result[int]{Status: query.StatusError, Err: err}, strconv.Itoa)
	if !s.NotFound() {
		t.Fatalf("expected not found")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2}, strconv.Itoa)
	if len(got) != 2 || got[1] != "2" {
		t.Fatalf("unexpected map result %v", got)
	}
	if empty := Map[int, string](nil, strconv.Itoa); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
