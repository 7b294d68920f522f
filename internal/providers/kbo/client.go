package kbo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kbostats/kbo-stats-service/internal/domain/games"
	"github.com/kbostats/kbo-stats-service/internal/domain/players"
	"github.com/kbostats/kbo-stats-service/internal/domain/teams"
	"github.com/kbostats/kbo-stats-service/internal/logging"
	"github.com/kbostats/kbo-stats-service/internal/metrics"
	"github.com/kbostats/kbo-stats-service/internal/providers"
)

// Config controls how the client reaches the KBO backend.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client issues one request per call against the KBO REST backend and maps the
// JSON responses to domain types. It never retries; that is the query layer's job.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a KBO backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// BaseURL returns the normalized backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return fetchPlayers(ctx, c, ResourcePlayers, "/players")
}

func (c *Client) FetchPlayer(ctx context.Context, id int64) (players.Player, error) {
	var payload playerResponse
	if err := c.getJSON(ctx, ResourcePlayer, "/players/"+formatID(id), nil, &payload); err != nil {
		return players.Player{}, err
	}
	return mapPlayer(payload), nil
}

func (c *Client) FetchPlayersByTeam(ctx context.Context, teamID int64) ([]players.Player, error) {
	return fetchPlayers(ctx, c, ResourcePlayersByTeam, "/players/team/"+formatID(teamID))
}

func (c *Client) FetchPlayersByPosition(ctx context.Context, position string) ([]players.Player, error) {
	return fetchPlayers(ctx, c, ResourcePlayersByPosition, "/players/position/"+url.PathEscape(position))
}

func (c *Client) FetchTopPitchers(ctx context.Context) ([]players.Player, error) {
	return fetchPlayers(ctx, c, ResourceTopPitchers, "/players/top-pitchers")
}

func (c *Client) FetchTopHittersByAverage(ctx context.Context) ([]players.Player, error) {
	return fetchPlayers(ctx, c, ResourceTopHittersAverage, "/players/top-hitters/average")
}

func (c *Client) FetchTopHittersByHomeRuns(ctx context.Context) ([]players.Player, error) {
	return fetchPlayers(ctx, c, ResourceTopHittersHR, "/players/top-hitters/home-runs")
}

func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return fetchTeams(ctx, c, ResourceTeams, "/teams")
}

func (c *Client) FetchTeam(ctx context.Context, id int64) (teams.Team, error) {
	var payload teamResponse
	if err := c.getJSON(ctx, ResourceTeam, "/teams/"+formatID(id), nil, &payload); err != nil {
		return teams.Team{}, err
	}
	return mapTeam(payload), nil
}

func (c *Client) FetchStandings(ctx context.Context) ([]teams.Team, error) {
	return fetchTeams(ctx, c, ResourceStandings, "/teams/standings")
}

func (c *Client) FetchGames(ctx context.Context) ([]games.Game, error) {
	return fetchGames(ctx, c, ResourceGames, "/games", nil)
}

func (c *Client) FetchGame(ctx context.Context, id int64) (games.Game, error) {
	var payload gameResponse
	if err := c.getJSON(ctx, ResourceGame, "/games/"+formatID(id), nil, &payload); err != nil {
		return games.Game{}, err
	}
	game, err := mapGame(payload)
	if err != nil {
		return games.Game{}, &providers.DecodeError{Resource: ResourceGame, Err: err}
	}
	return game, nil
}

func (c *Client) FetchGamesByDate(ctx context.Context, date string) ([]games.Game, error) {
	return fetchGames(ctx, c, ResourceGamesByDate, "/games/date", url.Values{"date": {date}})
}

func (c *Client) FetchGamesByTeam(ctx context.Context, teamID int64) ([]games.Game, error) {
	return fetchGames(ctx, c, ResourceGamesByTeam, "/games/team/"+formatID(teamID), nil)
}

func (c *Client) FetchUpcomingGames(ctx context.Context) ([]games.Game, error) {
	return fetchGames(ctx, c, ResourceUpcomingGames, "/games/upcoming", nil)
}

func (c *Client) FetchGamesByStatus(ctx context.Context, status games.GameStatus) ([]games.Game, error) {
	return fetchGames(ctx, c, ResourceGamesByStatus, "/games/status/"+url.PathEscape(string(status)), nil)
}

func (c *Client) FetchInningScores(ctx context.Context, gameID int64) ([]games.InningScore, error) {
	var payload []inningResponse
	if err := c.getJSON(ctx, ResourceInningScores, "/games/"+formatID(gameID)+"/innings", nil, &payload); err != nil {
		return nil, err
	}
	return mapInnings(payload, gameID), nil
}

// TriggerRealTimeUpdate asks the backend to re-crawl today's data. The backend reports
// crawl failures as a 500 with the same JSON body, so the body is decoded regardless of
// status and returned alongside any RequestError.
func (c *Client) TriggerRealTimeUpdate(ctx context.Context) (providers.UpdateResult, error) {
	start := c.now()
	result, err := c.triggerUpdate(ctx)
	c.observe(ctx, ResourceRealTimeUpdate, start, err)
	return result, err
}

func (c *Client) triggerUpdate(ctx context.Context) (providers.UpdateResult, error) {
	resp, err := c.send(ctx, http.MethodPost, ResourceRealTimeUpdate, "/games/real-time-update", nil)
	if err != nil {
		return providers.UpdateResult{Status: providers.UpdateError, Message: err.Error()}, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		netErr := &providers.NetworkError{Resource: ResourceRealTimeUpdate, Err: readErr}
		return providers.UpdateResult{Status: providers.UpdateError, Message: netErr.Error()}, netErr
	}

	var result providers.UpdateResult
	decodeErr := json.Unmarshal(body, &result)

	if !isSuccess(resp.StatusCode) {
		if decodeErr != nil || result.Status == "" {
			result = providers.UpdateResult{Status: providers.UpdateError, Message: http.StatusText(resp.StatusCode)}
		}
		return result, &providers.RequestError{
			Resource:   ResourceRealTimeUpdate,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body)),
		}
	}
	if decodeErr != nil {
		return providers.UpdateResult{Status: providers.UpdateError, Message: decodeErr.Error()},
			&providers.DecodeError{Resource: ResourceRealTimeUpdate, Err: decodeErr}
	}
	return result, nil
}

func fetchPlayers(ctx context.Context, c *Client, resource, path string) ([]players.Player, error) {
	var payload []playerResponse
	if err := c.getJSON(ctx, resource, path, nil, &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload), nil
}

func fetchTeams(ctx context.Context, c *Client, resource, path string) ([]teams.Team, error) {
	var payload []teamResponse
	if err := c.getJSON(ctx, resource, path, nil, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

func fetchGames(ctx context.Context, c *Client, resource, path string, query url.Values) ([]games.Game, error) {
	var payload []gameResponse
	if err := c.getJSON(ctx, resource, path, query, &payload); err != nil {
		return nil, err
	}
	out, err := mapGames(payload)
	if err != nil {
		return nil, &providers.DecodeError{Resource: resource, Err: err}
	}
	return out, nil
}

// getJSON performs a GET and decodes a 2xx body into dst.
func (c *Client) getJSON(ctx context.Context, resource, path string, query url.Values, dst any) error {
	start := c.now()
	err := c.fetchInto(ctx, resource, path, query, dst)
	c.observe(ctx, resource, start, err)
	return err
}

func (c *Client) fetchInto(ctx context.Context, resource, path string, query url.Values, dst any) error {
	resp, err := c.send(ctx, http.MethodGet, resource, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.RequestError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &providers.DecodeError{Resource: resource, Err: err}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, resource, path string, query url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, nil)
	if err != nil {
		return nil, &providers.NetworkError{Resource: resource, Err: err}
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.NetworkError{Resource: resource, Err: err}
	}
	return resp, nil
}

func (c *Client) observe(ctx context.Context, resource string, start time.Time, err error) {
	elapsed := c.now().Sub(start)
	c.metrics.RecordBackendCall(resource, elapsed, err)

	level := slog.LevelDebug
	msg := "backend request complete"
	args := []any{slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds())}
	if err != nil {
		level = slog.LevelWarn
		msg = "backend request failed"
		args = append(args, slog.Any("error", err))
		var reqErr *providers.RequestError
		if errors.As(err, &reqErr) {
			args = append(args, slog.Int(logging.FieldStatusCode, reqErr.StatusCode))
		}
	}
	providers.LogWithResource(ctx, c.logger, level, providerName, resource, msg, args...)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func truncate(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > errorBodyLimit {
		return body[:errorBodyLimit]
	}
	return body
}
