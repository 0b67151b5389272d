package app

import (
	"fmt"
	"strings"

	"trip_scout/internal/domain"
)

// Prompt construction. Pure functions of the request; the output-format
// contract is stated explicitly because the generative backend is untrusted
// and everything downstream depends on recovering a JSON span.

const outputContract = `Rules:
- Respond with a JSON array only, no surrounding prose and no markdown fences.
- The array must contain exactly %d objects.
- Use double quotes (") for every string.
- JSON-escape all special and control characters, including newlines, inside string values.`

// contextClauses builds the filter clause list from the fields that are
// actually present, in a fixed order. Falls back to a generic sightseeing
// context when the request carries nothing usable.
func contextClauses(req domain.RecommendationRequest) []string {
	var cs []string
	if req.Continent != "" {
		cs = append(cs, "in "+req.Continent)
	}
	if req.Subregion != "" {
		cs = append(cs, "in the "+req.Subregion+" region")
	}
	if req.Country != "" {
		cs = append(cs, "in "+req.Country)
	}
	if req.City != "" {
		cs = append(cs, "in or near "+req.City)
	}
	if req.Season != "" {
		cs = append(cs, "best visited in "+req.Season)
	}
	if req.Theme != "" {
		cs = append(cs, "suited to a "+req.Theme+" trip")
	} else {
		cs = append(cs, "suited to a sightseeing trip")
	}
	return cs
}

// buildRecommendPrompt renders the instruction for a K-item recommendation.
// crossCountry additionally demands one destination per country, which the
// deduplicator later enforces regardless.
func buildRecommendPrompt(req domain.RecommendationRequest, k int, crossCountry bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommend %d travel destinations %s.\n",
		k, strings.Join(contextClauses(req), ", "))
	if crossCountry {
		b.WriteString("No two destinations may share a country.\n")
	}
	fmt.Fprintf(&b, outputContract, k)
	b.WriteString("\nEach object has this shape:\n")
	b.WriteString(`[{"name": "destination name", "country": "country", "description": "one short paragraph"}]`)
	return b.String()
}

// buildCityPrompt renders the single-object instruction for a city detail.
func buildCityPrompt(city, country string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Describe %s, %s as a travel destination.\n", city, country)
	b.WriteString(`Respond with a single JSON object only, no surrounding prose and no markdown fences.
Use double quotes (") for every string and JSON-escape all special and control characters.
Shape:
{"name": "city name", "country": "country", "description": "one short paragraph"}`)
	return b.String()
}

// buildItineraryPrompt renders the day-plan instruction.
func buildItineraryPrompt(city string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day itinerary for %s.\n", days, city)
	fmt.Fprintf(&b, outputContract, days)
	b.WriteString("\nEach object has this shape:\n")
	b.WriteString(`[{"day": 1, "schedule": [{"time": "09:00", "activity": "activity"}]}]`)
	b.WriteString("\nTimes use 24-hour HH:MM and each day's schedule is in time order.")
	return b.String()
}
