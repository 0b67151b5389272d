package domain

// NA marks a hotel field the provider did not return; the field is kept, never
// omitted from the wire response.
const NA = "N/A"

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// FlightOffer is one priced flight segment. AirlineName is a display name
// resolved from the carrier code, with the code itself as fallback.
type FlightOffer struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	AirlineName   string `json:"airlineName"`
	FlightNumber  string `json:"flightNumber"`
	Price         Price  `json:"price"`
}

type HotelListing struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	ChainCode string `json:"chainCode"`
}

// TransitLeg is one leg of a transit plan.
type TransitLeg struct {
	Mode      string  `json:"mode"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	DistanceM float64 `json:"distance"`
	Route     string  `json:"route,omitempty"`
}

// RouteResult is either a driving route (Polyline set) or a transit plan
// (Legs set).
type RouteResult struct {
	DistanceM float64      `json:"distance"`
	Duration  float64      `json:"duration"` // seconds
	Polyline  string       `json:"polyline,omitempty"`
	Legs      []TransitLeg `json:"legs,omitempty"`
}
