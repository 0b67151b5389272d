package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"trip_scout/internal/domain"
	"trip_scout/internal/shared"
)

// IATAResolver resolves free-text city names to IATA codes in two tiers:
// the static local table first, then a remote lookup whose results are
// memoized process-wide. The mapping is effectively static for the process
// lifetime, so the memo is append-only and never invalidated.
type IATAResolver struct {
	remote   domain.CityLookup
	cache    domain.Cache
	cacheTTL int // seconds
}

func NewIATAResolver(remote domain.CityLookup, cache domain.Cache, ttlSec int) *IATAResolver {
	return &IATAResolver{remote: remote, cache: cache, cacheTTL: ttlSec}
}

// Resolve returns the code for a city, or domain.ErrResolution when both
// tiers miss. A local table hit never goes remote.
func (r *IATAResolver) Resolve(ctx context.Context, city string) (string, error) {
	if code, ok := shared.LookupCityIATA(city); ok {
		return code, nil
	}
	norm := shared.NormalizeCity(city)
	if norm == "" {
		return "", fmt.Errorf("%w: empty city name", domain.ErrResolution)
	}

	key := "iata:" + norm
	if r.cache != nil {
		var code string
		if ok, _ := r.cache.Get(ctx, key, &code); ok && code != "" {
			return code, nil
		}
	}

	if r.remote == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrResolution, city)
	}
	code, found, err := r.remote.LookupCity(ctx, city)
	if err != nil {
		// provider-down and city-unknown collapse into one resolution error
		// for callers; the log keeps them distinguishable for operators
		log.Warn().Err(err).Str("city", city).Msg("remote city lookup failed")
		return "", fmt.Errorf("%w: %q", domain.ErrResolution, city)
	}
	if !found || code == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrResolution, city)
	}
	if r.cache != nil {
		_ = r.cache.Set(ctx, key, code, r.cacheTTL)
	}
	return code, nil
}
