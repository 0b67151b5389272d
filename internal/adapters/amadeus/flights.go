// internal/adapters/amadeus/flights.go
package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"trip_scout/internal/domain"
)

type flightOffersResponse struct {
	Data []struct {
		Itineraries []struct {
			Segments []struct {
				Departure struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"arrival"`
				CarrierCode string `json:"carrierCode"`
				Number      string `json:"number"`
			} `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"data"`
}

// SearchFlights queries flight offers for resolved IATA codes. AirlineName is
// filled with the raw carrier code; the booking service maps it to a display
// name against the static carrier table.
func (c *Client) SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.FlightOffer, error) {
	v := url.Values{}
	v.Set("originLocationCode", q.OriginCode)
	v.Set("destinationLocationCode", q.DestinationCode)
	v.Set("departureDate", q.DepartDate)
	if q.ReturnDate != "" {
		v.Set("returnDate", q.ReturnDate)
	}
	v.Set("adults", strconv.Itoa(q.Adults))
	v.Set("max", "10")

	var out flightOffersResponse
	if err := c.get(ctx, "flight-offers", "/v2/shopping/flight-offers?"+v.Encode(), &out); err != nil {
		return nil, err
	}

	offers := make([]domain.FlightOffer, 0, len(out.Data))
	for _, d := range out.Data {
		if len(d.Itineraries) == 0 || len(d.Itineraries[0].Segments) == 0 {
			continue
		}
		segs := d.Itineraries[0].Segments
		first, last := segs[0], segs[len(segs)-1]
		offers = append(offers, domain.FlightOffer{
			Origin:        first.Departure.IataCode,
			Destination:   last.Arrival.IataCode,
			DepartureTime: first.Departure.At,
			ArrivalTime:   last.Arrival.At,
			AirlineName:   first.CarrierCode,
			FlightNumber:  fmt.Sprintf("%s%s", first.CarrierCode, first.Number),
			Price: domain.Price{
				Amount:   d.Price.Total,
				Currency: d.Price.Currency,
			},
		})
	}
	return offers, nil
}
