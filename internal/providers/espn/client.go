package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/timeutil"
)

// Config controls how the client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client reads the public scoreboard API and maps it into provider entities.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

var _ providers.ScheduleProvider = (*Client)(nil)

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchJSON performs a GET and decodes the body. Non-2xx responses yield *providers.FetchError.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Document{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("espn: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return Document{}, &providers.FetchError{
			StatusCode: resp.StatusCode,
			URL:        rawURL,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	doc, err := Decode(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("espn: decode %s: %w", rawURL, err)
	}
	return doc, nil
}

// Calendar fetches the scoreboard root and extracts the week calendar and current week.
func (c *Client) Calendar(ctx context.Context) (providers.Calendar, error) {
	doc, err := c.FetchJSON(ctx, c.scoreboardURL(nil))
	if err != nil {
		return providers.Calendar{}, err
	}
	return MapCalendar(doc), nil
}

// Matchups fetches every game whose date falls within [start, end].
func (c *Client) Matchups(ctx context.Context, start, end time.Time) ([]providers.Matchup, error) {
	q := url.Values{}
	q.Set("dates", timeutil.CompactRange(start, end))
	doc, err := c.FetchJSON(ctx, c.scoreboardURL(q))
	if err != nil {
		return nil, err
	}
	return MapMatchups(doc), nil
}

func (c *Client) scoreboardURL(q url.Values) string {
	u := c.baseURL + scoreboardPath
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
