// Package genius provides a client for the Genius song search API.
package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sukalov/lyricecho/internal/session"
)

// ErrUnauthorized is returned when the API rejects the access token.
var ErrUnauthorized = errors.New("genius: unauthorized")

const userAgent = "lyricecho/1.0 (+https://github.com/sukalov/lyricecho)"

// Client is a Genius API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a client for baseURL authenticated with token.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}

// Search returns the ranked hits for query. An empty slice with a nil error
// means the search succeeded with no matches.
func (c *Client) Search(ctx context.Context, query string) ([]Hit, error) {
	params := url.Values{}
	params.Set("q", query)

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	hits := make([]Hit, 0, len(result.Response.Hits))
	for _, h := range result.Response.Hits {
		if h.Type != "" && h.Type != "song" {
			continue
		}
		hits = append(hits, h.Result.toHit())
	}
	return hits, nil
}

// SearchResults runs Search and converts the hits into session results.
func (c *Client) SearchResults(ctx context.Context, query string) ([]session.SearchResult, error) {
	hits, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return ToResults(hits), nil
}

// ToResults converts hits into session results, preserving rank order.
func ToResults(hits []Hit) []session.SearchResult {
	out := make([]session.SearchResult, 0, len(hits))
	for _, h := range hits {
		out = append(out, session.SearchResult{
			Title:  h.Title,
			Artist: h.Artist,
			URL:    h.URL,
		})
	}
	return out
}
