// internal/adapters/geocode/client.go
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trip_scout/internal/adapters/observability"
	"trip_scout/internal/domain"
)

// Client is the Geocoder port on a Nominatim-style search endpoint.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 1 // public Nominatim allows one request per second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the first match's coordinates. found=false means the
// address is unknown to the geocoder, not a provider failure.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Coords, bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Coords{}, false, err
	}

	v := url.Values{}
	v.Set("q", address)
	v.Set("format", "json")
	v.Set("limit", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+v.Encode(), nil)
	if err != nil {
		return domain.Coords{}, false, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "trip-scout/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("geocode", "search", 0, time.Since(start))
		if ctx.Err() != nil {
			return domain.Coords{}, false, ctx.Err()
		}
		return domain.Coords{}, false, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("geocode", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.Coords{}, false, fmt.Errorf("geocode: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coords{}, false, err
	}
	if len(results) == 0 {
		return domain.Coords{}, false, nil
	}
	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return domain.Coords{}, false, fmt.Errorf("geocode: malformed coordinates %q,%q", results[0].Lat, results[0].Lon)
	}
	return domain.Coords{Lat: lat, Lon: lon}, true, nil
}
