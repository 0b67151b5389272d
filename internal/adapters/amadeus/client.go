// internal/adapters/amadeus/client.go
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"trip_scout/internal/adapters/observability"
	"trip_scout/internal/domain"
)

// Client talks to the Amadeus self-service APIs: OAuth token, flight offers,
// hotel lists and the city reference-data lookup that backs the remote tier
// of IATA resolution.
type Client struct {
	base   string
	hc     *http.Client
	key    string
	secret string
	rl     *rate.Limiter

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// Tokens are refreshed this long before their reported expiry.
const tokenSlack = 60 * time.Second

func New(base, key, secret string, rps int) (*Client, error) {
	if key == "" || secret == "" {
		return nil, fmt.Errorf("amadeus: API key and secret are required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		hc:     &http.Client{Timeout: 15 * time.Second},
		key:    key,
		secret: secret,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- token ----

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccessToken returns the cached bearer token, fetching a fresh one only when
// the current one has neared expiry. A failure here is an auth error, never a
// degradable one: it means misconfiguration.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Until(c.tokenExp) > tokenSlack {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.key)
	form.Set("client_secret", c.secret)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("amadeus", "token", 0, time.Since(start))
		return "", fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("amadeus", "token", resp.StatusCode, time.Since(start))
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: token status %d: %s", domain.ErrAuth, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil || tr.AccessToken == "" {
		return "", fmt.Errorf("%w: malformed token response", domain.ErrAuth)
	}
	c.token = tr.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.token, nil
}

// get performs one authorized GET with client-side rate limiting and decodes
// into out. Single attempt: the callers degrade or surface immediately.
func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	tok, err := c.AccessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("amadeus", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("amadeus", endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d", domain.ErrAuth, resp.StatusCode)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s status %d: %s", domain.ErrProvider, endpoint, resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
