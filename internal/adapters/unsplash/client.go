// internal/adapters/unsplash/client.go
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trip_scout/internal/adapters/observability"
)

// Client is the ImageSearcher port on the Unsplash search API. One attempt
// per call; the enrichment layer treats any failure as a placeholder, so
// retrying here would only burn the per-field budget.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("unsplash: access key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Search returns the first result's regular-size URL, or "" when the query
// matched nothing.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("unsplash", "search", 0, time.Since(start))
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("unsplash", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("unsplash: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].URLs.Regular, nil
}
