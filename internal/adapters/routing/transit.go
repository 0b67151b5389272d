// internal/adapters/routing/transit.go
package routing

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
	"trip_scout/internal/domain"
)

// Transit is the TransitPlanner port on an ODsay-style public-transit API.
// Each returned RouteResult carries an ordered leg list instead of a
// polyline.
type Transit struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func NewTransit(base, key string, rps int) (*Transit, error) {
	if key == "" {
		return nil, fmt.Errorf("transit: API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Transit{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type transitResponse struct {
	Result struct {
		Paths []struct {
			Info struct {
				TotalDistance float64 `json:"totalDistance"`
				TotalTime     float64 `json:"totalTime"` // minutes
			} `json:"info"`
			SubPaths []struct {
				Mode      string  `json:"trafficType"`
				StartTime string  `json:"startTime"`
				EndTime   string  `json:"endTime"`
				StartName string  `json:"startName"`
				EndName   string  `json:"endName"`
				Distance  float64 `json:"distance"`
				RouteName string  `json:"laneName"`
			} `json:"subPath"`
		} `json:"path"`
	} `json:"result"`
}

func (t *Transit) Plan(ctx context.Context, from, to domain.Coords, date, depTime string) ([]domain.RouteResult, error) {
	if err := t.rl.Wait(ctx); err != nil {
		return nil, err
	}

	v := url.Values{}
	v.Set("apiKey", t.key)
	v.Set("SX", fmt.Sprintf("%f", from.Lon))
	v.Set("SY", fmt.Sprintf("%f", from.Lat))
	v.Set("EX", fmt.Sprintf("%f", to.Lon))
	v.Set("EY", fmt.Sprintf("%f", to.Lat))
	if date != "" {
		v.Set("date", date)
	}
	if depTime != "" {
		v.Set("time", depTime)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.base+"/searchPubTransPathT?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	begin := time.Now()
	resp, err := t.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("transit", "plan", 0, time.Since(begin))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("transit", "plan", resp.StatusCode, time.Since(begin))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: transit status %d: %s", domain.ErrProvider, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var out transitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	plans := make([]domain.RouteResult, 0, len(out.Result.Paths))
	for _, p := range out.Result.Paths {
		rr := domain.RouteResult{
			DistanceM: p.Info.TotalDistance,
			Duration:  p.Info.TotalTime * 60,
		}
		for _, sp := range p.SubPaths {
			rr.Legs = append(rr.Legs, domain.TransitLeg{
				Mode:      sp.Mode,
				StartTime: sp.StartTime,
				EndTime:   sp.EndTime,
				From:      sp.StartName,
				To:        sp.EndName,
				DistanceM: sp.Distance,
				Route:     sp.RouteName,
			})
		}
		plans = append(plans, rr)
	}
	return plans, nil
}
