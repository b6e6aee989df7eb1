package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lexwire/lexwire/internal/config"
)

const statusSuccess = "success"

// Client loads article feeds from the legal-news API.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.API.BaseURL,
		userAgent: cfg.API.UserAgent,
		client: &http.Client{
			Timeout: cfg.API.HTTPTimeout,
		},
	}
}

// LoadFeed fetches the feed, scoped to tag when non-empty. On any failure
// (network, HTTP status, parse, API status) it returns the fallback dataset
// together with a non-nil error, so callers always have articles to show.
// A successful response with zero articles is a valid empty feed.
func (c *Client) LoadFeed(ctx context.Context, tag string) ([]Article, error) {
	articles, err := c.fetch(ctx, tag)
	if err != nil {
		return FallbackFeed(time.Now()), fmt.Errorf("loading feed: %w", err)
	}
	return articles, nil
}

func (c *Client) fetch(ctx context.Context, tag string) ([]Article, error) {
	endpoint := c.baseURL
	if tag != "" {
		endpoint += "?tag=" + url.QueryEscape(tag)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if env.Status != statusSuccess {
		return nil, fmt.Errorf("API returned status %q", env.Status)
	}

	if env.Data.Articles == nil {
		return []Article{}, nil
	}
	return env.Data.Articles, nil
}
