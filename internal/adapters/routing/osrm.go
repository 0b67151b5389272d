// internal/adapters/routing/osrm.go
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trip_scout/internal/adapters/observability"
	"trip_scout/internal/domain"
)

// OSRM is the Router port on an OSRM-compatible routing server. Driving
// routes come back with an encoded polyline.
type OSRM struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewOSRM(base string, rps int) *OSRM {
	if rps <= 0 {
		rps = 5
	}
	return &OSRM{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

func (o *OSRM) Route(ctx context.Context, start, end domain.Coords) (domain.RouteResult, error) {
	if err := o.rl.Wait(ctx); err != nil {
		return domain.RouteResult{}, err
	}

	// OSRM wants lon,lat pairs
	path := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f?overview=full",
		start.Lon, start.Lat, end.Lon, end.Lat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.base+path, nil)
	if err != nil {
		return domain.RouteResult{}, err
	}
	req.Header.Set("Accept", "application/json")

	begin := time.Now()
	resp, err := o.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("osrm", "route", 0, time.Since(begin))
		if ctx.Err() != nil {
			return domain.RouteResult{}, ctx.Err()
		}
		return domain.RouteResult{}, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("osrm", "route", resp.StatusCode, time.Since(begin))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.RouteResult{}, fmt.Errorf("%w: osrm status %d: %s", domain.ErrProvider, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var out osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.RouteResult{}, err
	}
	if out.Code != "Ok" || len(out.Routes) == 0 {
		return domain.RouteResult{}, fmt.Errorf("%w: osrm code %q", domain.ErrProvider, out.Code)
	}
	r := out.Routes[0]
	return domain.RouteResult{
		DistanceM: r.Distance,
		Duration:  r.Duration,
		Polyline:  r.Geometry,
	}, nil
}
