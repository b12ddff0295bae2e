// Package tautulli reads Plex movie watch history from Tautulli as a sync source.
package tautulli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/follwit/syncer"
)

const (
	DefaultMinWatchPercent = 85
	defaultPageSize        = 1000
)

// Client wraps the Tautulli API
type Client struct {
	baseURL         string
	apiKey          string
	user            string
	minWatchPercent float64
	pageSize        int
	httpClient      *http.Client
	logger          zerolog.Logger
}

var _ syncer.Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithUser limits the history to one Plex user.
func WithUser(user string) Option {
	return func(c *Client) {
		c.user = user
	}
}

// WithMinWatchPercent sets the progress from which a play counts as watched.
func WithMinWatchPercent(percent float64) Option {
	return func(c *Client) {
		if percent > 0 {
			c.minWatchPercent = percent
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a new Tautulli client without contacting the server.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		// Ensure base URL ends without slash
		baseURL:         strings.TrimRight(baseURL, "/"),
		apiKey:          apiKey,
		minWatchPercent: DefaultMinWatchPercent,
		pageSize:        defaultPageSize,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		logger:          logger.With().Str("component", "tautulli").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string { return "tautulli" }

// TestConnection tests the connection to Tautulli
func (c *Client) TestConnection(ctx context.Context) error {
	var resp struct {
		Response struct {
			Result  string  `json:"result"`
			Message *string `json:"message"`
		} `json:"response"`
	}
	if err := c.call(ctx, url.Values{"cmd": {"get_server_info"}}, &resp); err != nil {
		return err
	}
	return checkResult("get_server_info", resp.Response.Result, resp.Response.Message)
}

// Items lists every movie with at least one play that counts as watched, once per
// movie, carrying the time of its latest watched play.
func (c *Client) Items(ctx context.Context) ([]syncer.Item, error) {
	records, err := c.History(ctx)
	if err != nil {
		return nil, err
	}

	items := WatchedMovies(records, c.minWatchPercent)
	c.logger.Debug().Int("records", len(records)).Int("movies", len(items)).Msg("Collected watched movies from Tautulli")
	return items, nil
}

// History pages through the movie history of the configured user.
func (c *Client) History(ctx context.Context) ([]HistoryRecord, error) {
	var records []HistoryRecord
	for start := 0; ; start += c.pageSize {
		page, err := c.getHistory(ctx, start)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Data...)

		if len(page.Data) < c.pageSize || len(records) >= page.RecordsFiltered {
			return records, nil
		}
	}
}

// getHistory retrieves one page of history from the Tautulli API
func (c *Client) getHistory(ctx context.Context, start int) (*HistoryData, error) {
	params := url.Values{
		"cmd":        {"get_history"},
		"media_type": {"movie"},
		"start":      {strconv.Itoa(start)},
		"length":     {strconv.Itoa(c.pageSize)},
	}
	if c.user != "" {
		params.Set("user", c.user)
	}

	var history HistoryResponse
	if err := c.call(ctx, params, &history); err != nil {
		return nil, err
	}
	if err := checkResult("get_history", history.Response.Result, history.Response.Message); err != nil {
		return nil, err
	}
	return &history.Response.Data, nil
}

func (c *Client) call(ctx context.Context, params url.Values, out any) error {
	cmd := params.Get("cmd")
	params.Set("apikey", c.apiKey)

	requestURL := fmt.Sprintf("%s/api/v2?%s", c.baseURL, params.Encode())
	c.logger.Debug().Str("cmd", cmd).Msg("Making Tautulli API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tautulli %s: %w", cmd, c.redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// redact masks the API key in the URL a *url.Error carries. The wrapped cause is kept.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if c.apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	redacted.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(c.apiKey), "REDACTED")
	return &redacted
}

func checkResult(cmd, result string, message *string) error {
	if result == "success" {
		return nil
	}
	err := &ResultError{Cmd: cmd, Result: result}
	if message != nil {
		err.Message = *message
	}
	return err
}

// WatchedMovies folds history records into one item per watched movie. Records are
// keyed by IMDb id, then TMDb id, then title and year.
func WatchedMovies(records []HistoryRecord, minWatchPercent float64) []syncer.Item {
	index := make(map[string]int)
	var items []syncer.Item

	for i := range records {
		record := &records[i]
		if !record.IsWatched(minWatchPercent) {
			continue
		}

		item := syncer.Item{
			Title:     record.Title,
			Year:      record.Year,
			IMDbID:    record.IMDb(),
			WatchedAt: record.GetWatchedTime(),
		}
		if id, err := strconv.Atoi(record.TMDbID); err == nil && id > 0 {
			item.TMDbID = id
		}

		key := movieKey(item)
		if pos, ok := index[key]; ok {
			if item.WatchedAt.After(items[pos].WatchedAt) {
				items[pos].WatchedAt = item.WatchedAt
			}
			continue
		}
		index[key] = len(items)
		items = append(items, item)
	}

	if items == nil {
		return []syncer.Item{}
	}
	return items
}

func movieKey(item syncer.Item) string {
	switch {
	case item.IMDbID != "":
		return "imdb:" + item.IMDbID
	case item.TMDbID > 0:
		return "tmdb:" + strconv.Itoa(item.TMDbID)
	default:
		return fmt.Sprintf("title:%s:%d", strings.ToLower(item.Title), item.Year)
	}
}
