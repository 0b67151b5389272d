package domain

import "context"

// Capability interfaces the orchestration core depends on. Each may be swapped
// per deployment; the core only sees these.

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ImageSearcher interface {
	// Search returns the first matching image URL, or "" when nothing matched.
	Search(ctx context.Context, query string) (string, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (Coords, bool, error)
}

// CityLookup is the remote tier of IATA resolution: free-text city name to
// the first city-type result's code.
type CityLookup interface {
	LookupCity(ctx context.Context, name string) (string, bool, error)
}

type TokenProvider interface {
	// AccessToken returns a valid bearer token, fetching or reusing a cached
	// one that has not neared expiry.
	AccessToken(ctx context.Context) (string, error)
}

type FlightSearcher interface {
	SearchFlights(ctx context.Context, q FlightQuery) ([]FlightOffer, error)
}

type FlightQuery struct {
	OriginCode      string
	DestinationCode string
	DepartDate      string // YYYY-MM-DD
	ReturnDate      string // optional
	Adults          int
}

type HotelSearcher interface {
	ListByCity(ctx context.Context, cityCode string) ([]HotelListing, error)
}

type Router interface {
	Route(ctx context.Context, start, end Coords) (RouteResult, error)
}

type TransitPlanner interface {
	Plan(ctx context.Context, from, to Coords, date, depTime string) ([]RouteResult, error)
}

// Cache backs the process-wide IATA memo. Read-mostly, append-only; writers
// must not corrupt it, nothing ever invalidates it.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
