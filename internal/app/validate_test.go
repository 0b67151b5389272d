package app

import (
	"testing"

	"trip_scout/internal/domain"
)

func TestValidateCandidates_DropsInvalidKeepsOrder(t *testing.T) {
	raw := []map[string]any{
		{"name": "Kyoto", "country": "Japan", "description": "temples"},
		{"name": "  ", "country": "Japan"},            // blank name: dropped
		{"name": "Paris"},                             // missing country: dropped
		{"name": "Nice", "region": "France"},          // region alias for country
		{"country": "Italy", "description": "no name"}, // dropped
	}

	got := validateCandidates(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 valid records, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Kyoto" || got[1].Name != "Nice" {
		t.Fatalf("order not preserved: %+v", got)
	}
	if got[1].Country != "France" {
		t.Fatalf("region alias not applied: %+v", got[1])
	}
	if got[0].Image != domain.PlaceholderImage {
		t.Fatalf("missing image should default to placeholder, got %q", got[0].Image)
	}
}

func TestPlaceholderCandidates_ShapeAndReason(t *testing.T) {
	req := domain.RecommendationRequest{Country: "Japan"}
	got := placeholderCandidates(req, 3, "model output unusable")
	if len(got) != 3 {
		t.Fatalf("expected exactly 3, got %d", len(got))
	}
	for _, c := range got {
		if c.Name == "" || c.Country != "Japan" {
			t.Fatalf("placeholder missing required fields: %+v", c)
		}
		if c.Description != "model output unusable" {
			t.Fatalf("missing failure reason: %+v", c)
		}
		if c.Image != domain.PlaceholderImage {
			t.Fatalf("placeholder image expected: %+v", c)
		}
	}
}

func TestPlaceholderCandidates_GenericCountrySentinel(t *testing.T) {
	got := placeholderCandidates(domain.RecommendationRequest{}, 1, "r")
	if got[0].Country == "" {
		t.Fatalf("country must never be empty: %+v", got[0])
	}
}

func TestMapCityDetail_FallbackKeepsRequestedIdentity(t *testing.T) {
	c := mapCityDetail(nil, "Kyoto", "Japan")
	if c.Name != "Kyoto" || c.Country != "Japan" {
		t.Fatalf("requested identity lost: %+v", c)
	}
	if c.Description != "" || c.Image != domain.PlaceholderImage {
		t.Fatalf("expected empty description and placeholder image: %+v", c)
	}
}

func TestMapItinerary_SortsScheduleAndDropsBadDays(t *testing.T) {
	raw := []map[string]any{
		{
			"day": float64(1),
			"schedule": []any{
				map[string]any{"time": "14:00", "activity": "museum"},
				map[string]any{"time": "09:00", "activity": "breakfast"},
				map[string]any{"time": "", "activity": "unknown"}, // dropped
			},
		},
		{"day": float64(0), "schedule": []any{}},  // non-positive day: dropped
		{"schedule": []any{}},                     // missing day: dropped
	}

	got := mapItinerary(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 day, got %d", len(got))
	}
	if len(got[0].Schedule) != 2 {
		t.Fatalf("expected 2 entries, got %+v", got[0].Schedule)
	}
	if got[0].Schedule[0].Time != "09:00" || got[0].Schedule[1].Time != "14:00" {
		t.Fatalf("schedule not time-ordered: %+v", got[0].Schedule)
	}
}

func TestMapItinerary_SloppyTimesNormalizedAndOrdered(t *testing.T) {
	raw := []map[string]any{
		{
			"day": float64(1),
			"schedule": []any{
				map[string]any{"time": "14:00", "activity": "museum"},
				map[string]any{"time": "9:00", "activity": "breakfast"}, // not zero-padded
				map[string]any{"time": "noon", "activity": "lunch"},     // unparseable: dropped
			},
		},
	}

	got := mapItinerary(raw)
	if len(got) != 1 || len(got[0].Schedule) != 2 {
		t.Fatalf("expected 1 day with 2 entries, got %+v", got)
	}
	if got[0].Schedule[0].Time != "09:00" || got[0].Schedule[0].Activity != "breakfast" {
		t.Fatalf("non-padded time must normalize and sort first: %+v", got[0].Schedule)
	}
	if got[0].Schedule[1].Time != "14:00" {
		t.Fatalf("schedule not time-ordered: %+v", got[0].Schedule)
	}
}
