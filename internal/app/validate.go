package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"trip_scout/internal/domain"
)

/********** alias registries (single source of truth) **********/

var candidateAliases = map[string][]string{
	"name":        {"name", "destination", "place", "title"},
	"country":     {"country", "region", "nation"},
	"description": {"description", "desc", "summary", "details"},
	"image":       {"image", "image_url", "imageUrl", "photo"},
	"score":       {"score", "rating", "rank"},
}

/********** tiny helpers **********/

func lookupStr(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func lookupFloat(m map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		}
	}
	return nil
}

/********** candidate validation **********/

// mapCandidate schema-checks one raw record. Records missing a non-empty name
// or country are dropped, not corrected; optional fields get defaults.
func mapCandidate(m map[string]any) (domain.Candidate, bool) {
	name := lookupStr(m, candidateAliases["name"]...)
	country := lookupStr(m, candidateAliases["country"]...)
	if name == "" || country == "" {
		return domain.Candidate{}, false
	}
	c := domain.Candidate{
		Name:        name,
		Country:     country,
		Description: lookupStr(m, candidateAliases["description"]...),
		Image:       lookupStr(m, candidateAliases["image"]...),
		Score:       lookupFloat(m, candidateAliases["score"]...),
	}
	if c.Image == "" {
		c.Image = domain.PlaceholderImage
	}
	return c, true
}

// validateCandidates keeps the valid records in extraction order.
func validateCandidates(raw []map[string]any) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(raw))
	for _, m := range raw {
		if c, ok := mapCandidate(m); ok {
			out = append(out, c)
		}
	}
	return out
}

// placeholderCandidates synthesizes exactly k deterministic records carrying a
// failure reason, so the response shape is identical on success and total
// failure and callers never branch on an error schema.
func placeholderCandidates(req domain.RecommendationRequest, k int, reason string) []domain.Candidate {
	country := req.Country
	if country == "" {
		country = "Unknown"
	}
	out := make([]domain.Candidate, 0, k)
	for i := 1; i <= k; i++ {
		name := fmt.Sprintf("Suggested destination %d", i)
		if req.City != "" {
			name = req.City
		}
		out = append(out, domain.Candidate{
			Name:        name,
			Country:     country,
			Description: reason,
			Image:       domain.PlaceholderImage,
		})
	}
	return out
}

/********** city detail **********/

// mapCityDetail applies the same policy at K=1 scalar granularity: the
// requested name/country win over whatever the model invented when the model
// gave nothing usable.
func mapCityDetail(m map[string]any, city, country string) domain.Candidate {
	c := domain.Candidate{
		Name:    city,
		Country: country,
		Image:   domain.PlaceholderImage,
	}
	if m == nil {
		return c
	}
	if s := lookupStr(m, candidateAliases["name"]...); s != "" {
		c.Name = s
	}
	if s := lookupStr(m, candidateAliases["country"]...); s != "" {
		c.Country = s
	}
	c.Description = lookupStr(m, candidateAliases["description"]...)
	if s := lookupStr(m, candidateAliases["image"]...); s != "" {
		c.Image = s
	}
	return c
}

/********** itinerary validation **********/

// mapItinerary validates day records: positive day number required, schedule
// entries need both a parseable HH:MM time and an activity. Times are
// re-rendered zero-padded ("9:00" becomes "09:00") so the string sort below is
// chronological; the backend is untrusted and a transposed or sloppy time
// should not void a whole day.
func mapItinerary(raw []map[string]any) []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, 0, len(raw))
	for _, m := range raw {
		day := lookupFloat(m, "day")
		if day == nil || *day < 1 {
			continue
		}
		d := domain.ItineraryDay{Day: int(*day)}
		if entries, ok := m["schedule"].([]any); ok {
			for _, e := range entries {
				em, ok := e.(map[string]any)
				if !ok {
					continue
				}
				act := lookupStr(em, "activity")
				ts, err := time.Parse("15:04", lookupStr(em, "time"))
				if err != nil || act == "" {
					continue
				}
				d.Schedule = append(d.Schedule, domain.ScheduleEntry{Time: ts.Format("15:04"), Activity: act})
			}
		}
		sort.SliceStable(d.Schedule, func(i, j int) bool {
			return d.Schedule[i].Time < d.Schedule[j].Time
		})
		out = append(out, d)
	}
	return out
}

// placeholderItinerary fills days 1..k with an empty schedule and a single
// explanatory entry.
func placeholderItinerary(k int, reason string) []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, 0, k)
	for i := 1; i <= k; i++ {
		out = append(out, domain.ItineraryDay{
			Day:      i,
			Schedule: []domain.ScheduleEntry{{Time: "09:00", Activity: reason}},
		})
	}
	return out
}
