package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"trip_scout/internal/domain"
	"trip_scout/internal/shared"
)

const maxHotelListings = 10

// BookingService covers the bookable flows: flight search, hotel listing and
// routing. Unlike candidate enrichment these operations have no meaningful
// partial result, so resolution and auth failures surface as errors instead
// of degrading. Providers left unconfigured at startup are nil; their
// operations fail with ErrProvider rather than reaching the nil interface.
type BookingService struct {
	resolver *IATAResolver
	flights  domain.FlightSearcher
	hotels   domain.HotelSearcher
	geocode  domain.Geocoder
	router   domain.Router
	transit  domain.TransitPlanner
	timeout  time.Duration
}

func NewBookingService(resolver *IATAResolver, flights domain.FlightSearcher, hotels domain.HotelSearcher,
	geocode domain.Geocoder, router domain.Router, transit domain.TransitPlanner, timeout time.Duration) *BookingService {
	return &BookingService{
		resolver: resolver,
		flights:  flights,
		hotels:   hotels,
		geocode:  geocode,
		router:   router,
		transit:  transit,
		timeout:  timeout,
	}
}

// SearchFlights resolves both endpoints (concurrently, each through the
// two-tier resolver) and searches. Either endpoint failing to resolve fails
// the whole operation: a flight search with no route codes has nothing
// partial to return.
func (s *BookingService) SearchFlights(ctx context.Context, originCity, destCity, departDate, returnDate string, adults int) ([]domain.FlightOffer, error) {
	if strings.TrimSpace(originCity) == "" || strings.TrimSpace(destCity) == "" || strings.TrimSpace(departDate) == "" {
		return nil, fmt.Errorf("%w: origin, destination and departDate are required", domain.ErrBadInput)
	}
	if s.flights == nil {
		return nil, fmt.Errorf("%w: flight search not configured", domain.ErrProvider)
	}
	if adults <= 0 {
		adults = 1
	}

	var originCode, destCode string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		originCode, err = s.resolver.Resolve(gctx, originCity)
		return err
	})
	g.Go(func() error {
		var err error
		destCode, err = s.resolver.Resolve(gctx, destCity)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	offers, err := s.flights.SearchFlights(cctx, domain.FlightQuery{
		OriginCode:      originCode,
		DestinationCode: destCode,
		DepartDate:      departDate,
		ReturnDate:      returnDate,
		Adults:          adults,
	})
	if err != nil {
		return nil, err
	}
	for i := range offers {
		offers[i].AirlineName = shared.CarrierName(offers[i].AirlineName)
	}
	return offers, nil
}

// ListHotels caps the list at ten entries and keeps "N/A" sentinels for any
// missing field rather than omitting it.
func (s *BookingService) ListHotels(ctx context.Context, cityCode string) ([]domain.HotelListing, error) {
	cityCode = strings.ToUpper(strings.TrimSpace(cityCode))
	if cityCode == "" {
		return nil, fmt.Errorf("%w: city code is required", domain.ErrBadInput)
	}
	if s.hotels == nil {
		return nil, fmt.Errorf("%w: hotel search not configured", domain.ErrProvider)
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	hs, err := s.hotels.ListByCity(cctx, cityCode)
	if err != nil {
		return nil, err
	}
	if len(hs) > maxHotelListings {
		hs = hs[:maxHotelListings]
	}
	for i := range hs {
		if hs[i].Name == "" {
			hs[i].Name = domain.NA
		}
		if hs[i].ID == "" {
			hs[i].ID = domain.NA
		}
		if hs[i].ChainCode == "" {
			hs[i].ChainCode = domain.NA
		}
	}
	return hs, nil
}

// DriveRoute geocodes both endpoints and asks the router for a driving route.
func (s *BookingService) DriveRoute(ctx context.Context, start, end string) (domain.RouteResult, error) {
	from, to, err := s.geocodePair(ctx, start, end)
	if err != nil {
		return domain.RouteResult{}, err
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.router.Route(cctx, from, to)
}

// TransitPlan geocodes both endpoints and returns the planner's itineraries.
// An empty plan is a valid answer (no service), not an error.
func (s *BookingService) TransitPlan(ctx context.Context, start, end, date, depTime string) ([]domain.RouteResult, error) {
	if s.transit == nil {
		return nil, fmt.Errorf("%w: transit planning not configured", domain.ErrProvider)
	}
	from, to, err := s.geocodePair(ctx, start, end)
	if err != nil {
		return nil, err
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	plans, err := s.transit.Plan(cctx, from, to, date, depTime)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []domain.RouteResult{}
	}
	return plans, nil
}

func (s *BookingService) geocodePair(ctx context.Context, start, end string) (domain.Coords, domain.Coords, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return domain.Coords{}, domain.Coords{}, fmt.Errorf("%w: start and end are required", domain.ErrBadInput)
	}
	var from, to domain.Coords
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = s.geocodeOne(gctx, start)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = s.geocodeOne(gctx, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Coords{}, domain.Coords{}, err
	}
	return from, to, nil
}

func (s *BookingService) geocodeOne(ctx context.Context, address string) (domain.Coords, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	c, found, err := s.geocode.Resolve(cctx, address)
	if err != nil {
		log.Warn().Err(err).Str("address", address).Msg("geocoding failed")
		return domain.Coords{}, fmt.Errorf("%w: %q", domain.ErrResolution, address)
	}
	if !found {
		return domain.Coords{}, fmt.Errorf("%w: %q", domain.ErrResolution, address)
	}
	return c, nil
}
