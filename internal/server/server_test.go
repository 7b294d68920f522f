package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/config"
	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/providers/fixture"
	"github.com/kbostats/kbo-stats-service/internal/providers/kbo"
	"github.com/kbostats/kbo-stats-service/internal/query"
	"github.com/kbostats/kbo-stats-service/internal/store"
	"github.com/kbostats/kbo-stats-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: config.ProviderFixture,
		Cache:    config.CacheConfig{Backend: config.CacheBackendMemory},
		Warm:     config.WarmConfig{Enabled: true, Interval: 5 * time.Millisecond},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesHealthAndTeams(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithProvider(testConfig(), logger, testutil.NewStubProvider(testutil.DefaultNow))

	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/games/9999", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestServerBecomesReadyAfterWarmCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithProvider(testConfig(), logger, testutil.NewStubProvider(testutil.DefaultNow))
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(context.Background()) }()

	deadline := time.After(500 * time.Millisecond)
	for {
		rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
		if rr.Code == http.StatusOK {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for ready, last status %d", rr.Code)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestServerWithoutWarmerIsReady(t *testing.T) {
	cfg := testConfig()
	cfg.Warm.Enabled = false
	srv := newServerWithProvider(cfg, nil, testutil.NewStubProvider(testutil.DefaultNow))

	if srv.poller != nil {
		t.Fatalf("expected no poller when warming disabled")
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	cfg := testConfig()
	srv := newServerWithProvider(cfg, nil, testutil.NewStubProvider(testutil.DefaultNow))
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/cache/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	cfg.AdminToken = "secret"
	srv = newServerWithProvider(cfg, nil, testutil.NewStubProvider(testutil.DefaultNow))
	req := httptest.NewRequest(http.MethodPost, "/admin/real-time-update", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: "unknown"}, nil, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for unknown provider")
	}
	if _, ok := selectProvider(config.Config{Provider: config.ProviderFixture}, nil, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
	prov := selectProvider(config.Config{
		Provider: config.ProviderKBO,
		Backend:  config.BackendConfig{BaseURL: "http://kbo.test/api", Timeout: time.Second},
	}, nil, metrics.NewRecorder())
	client, ok := prov.(*kbo.Client)
	if !ok {
		t.Fatalf("expected kbo client, got %T", prov)
	}
	if client.BaseURL() != "http://kbo.test/api" {
		t.Fatalf("unexpected base url %s", client.BaseURL())
	}
}

func TestSelectStore(t *testing.T) {
	if _, ok := selectStore(context.Background(), config.CacheConfig{Backend: config.CacheBackendMemory}, nil).(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store")
	}

	orig := newRedisStore
	defer func() { newRedisStore = orig }()
	var gotURL, gotPrefix string
	newRedisStore = func(ctx context.Context, url, prefix string) (query.Store, error) {
		gotURL, gotPrefix = url, prefix
		return nil, errors.New("dial tcp: connection refused")
	}

	logger, buf := testutil.NewBufferLogger()
	st := selectStore(context.Background(), config.CacheConfig{
		Backend:   config.CacheBackendRedis,
		RedisURL:  "redis://localhost:6379/0",
		KeyPrefix: "kbo:query:",
	}, logger)
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory fallback when redis is unavailable")
	}
	if gotURL != "redis://localhost:6379/0" || gotPrefix != "kbo:query:" {
		t.Fatalf("unexpected redis args %s %s", gotURL, gotPrefix)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected fallback to be logged")
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(testConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

type closeTrackingStore struct {
	*store.MemoryStore
	closes int
}

func (s *closeTrackingStore) Close() error {
	s.closes++
	return nil
}

func TestGracefulShutdownClosesCache(t *testing.T) {
	st := &closeTrackingStore{MemoryStore: store.NewMemoryStore()}
	cache := query.NewCache(query.Options{Store: st})
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, cache, httpSrv, nil)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown without a poller")
	}
	if st.closes != 1 {
		t.Fatalf("expected cache store closed once, got %d", st.closes)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.ErrHTTPServer{}, &testutil.StubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}

func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
}

func TestBuildMetricsFailureFallsBack(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, nil)
	if rec == nil || srv != nil || stop != nil {
		t.Fatalf("expected bare recorder on setup failure")
	}
}

func TestBuildMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	got, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, rec)
	if got != rec || srv != nil || stop != nil {
		t.Fatalf("expected injected recorder to be used as-is")
	}
}
