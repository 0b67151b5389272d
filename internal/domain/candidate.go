package domain

// PlaceholderImage is served whenever image lookup fails or returns nothing,
// so degraded responses stay renderable.
const PlaceholderImage = "https://via.placeholder.com/400x250?text=No+Image"

// RecommendationRequest carries the optional filters of a recommendation call.
// All fields may be empty; an empty request degrades to a generic sightseeing
// context rather than failing.
type RecommendationRequest struct {
	Theme     string `json:"theme,omitempty"`
	Continent string `json:"continent,omitempty"`
	Subregion string `json:"subregion,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	Season    string `json:"season,omitempty"`
}

// Empty reports whether no filter at all was supplied.
func (r RecommendationRequest) Empty() bool {
	return r.Theme == "" && r.Continent == "" && r.Subregion == "" &&
		r.Country == "" && r.City == "" && r.Season == ""
}

// Candidate is a single recommended destination. Name and Country are always
// non-empty on anything handed back to a caller; Image falls back to
// PlaceholderImage.
type Candidate struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Score       *float64 `json:"score,omitempty"`
}

// ScheduleEntry is one timed activity within an itinerary day.
type ScheduleEntry struct {
	Time     string `json:"time"` // HH:MM
	Activity string `json:"activity"`
}

// ItineraryDay is one day of a generated plan. Schedule is ordered by Time.
type ItineraryDay struct {
	Day      int             `json:"day"`
	Schedule []ScheduleEntry `json:"schedule"`
}
