package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbostats/kbo-stats-service/internal/app/view"
	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestSectionStatus(t *testing.T) {
	notFound := &providers.RequestError{Resource: "game", StatusCode: http.StatusNotFound}
	stale := []int{1}

	tests := []struct {
		name string
		r    query.Result[[]int]
		want int
	}{
		{"ready", query.Result[[]int]{Status: query.StatusReady, Data: []int{1}, HasData: true}, http.StatusOK},
		{"idle", query.Result[[]int]{Status: query.StatusIdle}, http.StatusOK},
		{"not found", query.Result[[]int]{Status: query.StatusError, Err: notFound}, http.StatusNotFound},
		{"stale", query.Result[[]int]{Status: query.StatusError, Err: errors.New("down"), Data: stale, HasData: true, Stale: true}, http.StatusOK},
		{"failed", query.Result[[]int]{Status: query.StatusError, Err: errors.New("down")}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		section := view.From(tt.r, func(v []int) []int { return v })
		if got := sectionStatus(section); got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}
