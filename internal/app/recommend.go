package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"trip_scout/internal/domain"
)

// RecommendService is the orchestration core: prompt construction, lenient
// extraction, validation with fallback, deduplication and concurrent
// enrichment. It owns no HTTP concerns and no provider wiring.
type RecommendService struct {
	gen     domain.TextGenerator
	enrich  *enricher
	k       int
	timeout time.Duration
}

func NewRecommendService(gen domain.TextGenerator, images domain.ImageSearcher, k int, timeout time.Duration, workers int) *RecommendService {
	if k <= 0 {
		k = 3
	}
	return &RecommendService{
		gen:     gen,
		enrich:  newEnricher(images, timeout, workers),
		k:       k,
		timeout: timeout,
	}
}

// Recommend runs the full pipeline. Upstream failures never fail the call:
// the caller always gets a well-formed candidate list, degraded to
// placeholders when the generative tier gave nothing usable.
func (s *RecommendService) Recommend(ctx context.Context, req domain.RecommendationRequest) []domain.Candidate {
	run := uuid.NewString()
	crossCountry := req.Country == "" // discovery across countries unless pinned to one
	if req.Empty() {
		log.Debug().Str("run", run).Msg("no filters supplied; generic sightseeing context")
	}

	text, err := s.generate(ctx, buildRecommendPrompt(req, s.k, crossCountry))
	if err != nil {
		log.Warn().Err(err).Str("run", run).Msg("text generation failed")
		return placeholderCandidates(req, s.k, "Generation unavailable: "+err.Error())
	}

	cands := validateCandidates(extractArray(text))
	if len(cands) == 0 {
		log.Warn().Str("run", run).Msg("no valid records extracted")
		return placeholderCandidates(req, s.k, "No structured recommendations could be recovered")
	}
	if crossCountry {
		cands = dedupeByCountry(cands, s.k)
	} else if len(cands) > s.k {
		cands = cands[:s.k]
	}

	s.enrich.enrichImages(ctx, cands, req.Subregion)
	if ctx.Err() != nil {
		// caller aborted; nothing should be retained past this point
		return nil
	}
	log.Info().Str("run", run).Int("candidates", len(cands)).Msg("recommendation assembled")
	return cands
}

// CityDetail is the single-entity flow with K=1 fallback semantics. City and
// country are required client input.
func (s *RecommendService) CityDetail(ctx context.Context, city, country string) (domain.Candidate, error) {
	city, country = strings.TrimSpace(city), strings.TrimSpace(country)
	if city == "" || country == "" {
		return domain.Candidate{}, domain.ErrBadInput
	}

	var raw map[string]any
	if text, err := s.generate(ctx, buildCityPrompt(city, country)); err == nil {
		raw = extractObject(text)
	} else {
		log.Warn().Err(err).Str("city", city).Msg("city detail generation failed")
	}
	c := mapCityDetail(raw, city, country)

	cs := []domain.Candidate{c}
	s.enrich.enrichImages(ctx, cs, "")
	if ctx.Err() != nil {
		return domain.Candidate{}, ctx.Err()
	}
	return cs[0], nil
}

// Itinerary generates a day-by-day plan. Days defaults to 3 and is capped so
// a hostile parameter cannot blow the prompt up.
func (s *RecommendService) Itinerary(ctx context.Context, city string, days int) ([]domain.ItineraryDay, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrBadInput
	}
	if days <= 0 {
		days = 3
	}
	if days > 14 {
		days = 14
	}

	text, err := s.generate(ctx, buildItineraryPrompt(city, days))
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("itinerary generation failed")
		return placeholderItinerary(days, "Itinerary unavailable: "+err.Error()), nil
	}
	plan := mapItinerary(extractArray(text))
	if len(plan) == 0 {
		return placeholderItinerary(days, "No structured itinerary could be recovered"), nil
	}
	return plan, nil
}

// generate wraps the text backend in the provider timeout. No retries: the
// backend is neither idempotent nor cheap to re-call.
func (s *RecommendService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.gen.Generate(ctx, prompt)
}
