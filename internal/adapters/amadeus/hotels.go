// internal/adapters/amadeus/hotels.go
package amadeus

import (
	"context"
	"net/url"

	"trip_scout/internal/domain"
)

type hotelListResponse struct {
	Data []struct {
		Name      string `json:"name"`
		HotelID   string `json:"hotelId"`
		ChainCode string `json:"chainCode"`
	} `json:"data"`
}

// ListByCity returns the raw hotel list for a city code. Missing fields stay
// empty here; the booking service substitutes the "N/A" sentinels.
func (c *Client) ListByCity(ctx context.Context, cityCode string) ([]domain.HotelListing, error) {
	v := url.Values{}
	v.Set("cityCode", cityCode)

	var out hotelListResponse
	if err := c.get(ctx, "hotels-by-city", "/v1/reference-data/locations/hotels/by-city?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	hs := make([]domain.HotelListing, 0, len(out.Data))
	for _, d := range out.Data {
		hs = append(hs, domain.HotelListing{
			Name:      d.Name,
			ID:        d.HotelID,
			ChainCode: d.ChainCode,
		})
	}
	return hs, nil
}
