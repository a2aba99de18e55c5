// Package youtube talks to the YouTube Data API v3 and the public channel feeds.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ytgrip/internal/domain"
	"ytgrip/internal/logging"
)

const (
	DefaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	DefaultMaxResults = 30

	// WatchURLPrefix is prepended to a video ID to build a playable link
	WatchURLPrefix = "https://youtube.com/watch?v="

	maxBodyBytes = 4 << 20

	// non-JSON error bodies are cut to this many cells
	maxMessageWidth = 200
)

// Client queries the search and videos endpoints
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API root (used by tests)
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithMaxResults sets the page size of the search call
func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// WithTimeout sets the per-request HTTP timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLimiter replaces the request limiter
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// NewClient creates a client using apiKey for every request
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		maxResults: DefaultMaxResults,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(250*time.Millisecond), 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
		Description  string `json:"description"`
	} `json:"snippet"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string `json:"id"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Search returns the videos matching query.
//
// query is expected in normalized form (terms joined with '+'). The result
// merges the search and videos responses by position and is as long as the
// shorter of the two.
func (c *Client) Search(ctx context.Context, query string) ([]domain.ResultItem, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	searchURL := fmt.Sprintf("%s/search?part=snippet&type=video&maxResults=%d&q=%s&key=%s",
		c.baseURL, c.maxResults, encodeQuery(query), url.QueryEscape(c.apiKey))

	var found searchResponse
	if err := c.getJSON(ctx, "search", searchURL, &found); err != nil {
		return nil, err
	}
	if len(found.Items) == 0 {
		return []domain.ResultItem{}, nil
	}

	ids := make([]string, 0, len(found.Items))
	for _, item := range found.Items {
		ids = append(ids, item.ID.VideoID)
	}

	videosURL := fmt.Sprintf("%s/videos?part=contentDetails,statistics&id=%s&key=%s",
		c.baseURL, url.QueryEscape(strings.Join(ids, ",")), url.QueryEscape(c.apiKey))

	var details videosResponse
	if err := c.getJSON(ctx, "videos", videosURL, &details); err != nil {
		return nil, err
	}

	items := merge(found.Items, details.Items)
	logging.Debug("youtube search complete",
		zap.String("query", query),
		zap.Int("search_items", len(found.Items)),
		zap.Int("detail_items", len(details.Items)),
		zap.Int("results", len(items)))
	return items, nil
}

func merge(found []searchItem, details []videoItem) []domain.ResultItem {
	n := len(found)
	if len(details) < n {
		n = len(details)
	}
	items := make([]domain.ResultItem, 0, n)
	for i := 0; i < n; i++ {
		s, d := found[i], details[i]
		items = append(items, domain.ResultItem{
			Title:       s.Snippet.Title,
			Channel:     s.Snippet.ChannelTitle,
			PublishedAt: s.Snippet.PublishedAt,
			Duration:    d.ContentDetails.Duration,
			ViewCount:   d.Statistics.ViewCount,
			Link:        WatchURLPrefix + s.ID.VideoID,
			Description: s.Snippet.Description,
		})
	}
	return items
}

// encodeQuery escapes each '+'-separated term, keeping '+' as the separator
func encodeQuery(query string) string {
	if query == "" {
		return ""
	}
	parts := strings.Split(query, "+")
	for i, p := range parts {
		parts[i] = url.QueryEscape(p)
	}
	return strings.Join(parts, "+")
}

func (c *Client) getJSON(ctx context.Context, op, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("rate limiter wait: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(apiMessage(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

func apiMessage(body []byte) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	msg = runewidth.Truncate(msg, maxMessageWidth, "…")
	if msg == "" {
		return "empty response"
	}
	return msg
}

// ParseViewCount converts the API's decimal string into a number
func ParseViewCount(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
