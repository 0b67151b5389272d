// internal/adapters/amadeus/locations.go
package amadeus

import (
	"context"
	"net/url"
)

type locationsResponse struct {
	Data []struct {
		SubType  string `json:"subType"`
		IataCode string `json:"iataCode"`
	} `json:"data"`
}

// LookupCity is the remote tier of IATA resolution: the first CITY-type
// result's code for a free-text keyword. found=false is "city truly unknown";
// a non-nil error is "provider down". Callers collapse both into one
// resolution failure.
func (c *Client) LookupCity(ctx context.Context, name string) (string, bool, error) {
	v := url.Values{}
	v.Set("keyword", name)
	v.Set("subType", "CITY")

	var out locationsResponse
	if err := c.get(ctx, "locations", "/v1/reference-data/locations?"+v.Encode(), &out); err != nil {
		return "", false, err
	}
	for _, d := range out.Data {
		if d.SubType == "CITY" && d.IataCode != "" {
			return d.IataCode, true, nil
		}
	}
	return "", false, nil
}
