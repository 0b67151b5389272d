package amadeus_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"trip_scout/internal/adapters/amadeus"
	"trip_scout/internal/domain"
)

func newTestServer(t *testing.T, tokenHits *int32, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/security/oauth2/token" {
			atomic.AddInt32(tokenHits, 1)
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "expires_in": 1799})
			return
		}
		handler(w, r)
	}))
}

func TestAccessToken_CachedUntilNearExpiry(t *testing.T) {
	var tokenHits int32
	ts := newTestServer(t, &tokenHits, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"data": []}`))
	})
	defer ts.Close()

	cl, err := amadeus.New(ts.URL, "key", "secret", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, _, err := cl.LookupCity(ctx, "Reykjavik"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if n := atomic.LoadInt32(&tokenHits); n != 1 {
		t.Fatalf("expected a single token fetch across calls, got %d", n)
	}
}

func TestSearchFlights_Mapping(t *testing.T) {
	var tokenHits int32
	ts := newTestServer(t, &tokenHits, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("originLocationCode"); got != "SEL" {
			t.Errorf("origin code not forwarded: %q", got)
		}
		w.WriteHeader(200)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{
				"itineraries": []map[string]any{{
					"segments": []map[string]any{
						{
							"departure":   map[string]any{"iataCode": "ICN", "at": "2026-09-15T10:00:00"},
							"arrival":     map[string]any{"iataCode": "NRT", "at": "2026-09-15T12:30:00"},
							"carrierCode": "KE",
							"number":      "701",
						},
					},
				}},
				"price": map[string]any{"total": "250.00", "currency": "EUR"},
			}},
		})
	})
	defer ts.Close()

	cl, err := amadeus.New(ts.URL, "key", "secret", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	offers, err := cl.SearchFlights(ctx, domain.FlightQuery{
		OriginCode: "SEL", DestinationCode: "TYO", DepartDate: "2026-09-15", Adults: 1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}
	o := offers[0]
	if o.Origin != "ICN" || o.Destination != "NRT" || o.FlightNumber != "KE701" {
		t.Fatalf("unexpected offer: %+v", o)
	}
	if o.AirlineName != "KE" {
		t.Fatalf("adapter should pass the raw carrier code: %+v", o)
	}
	if o.Price.Amount != "250.00" || o.Price.Currency != "EUR" {
		t.Fatalf("price not mapped: %+v", o.Price)
	}
}

func TestGet_UnauthorizedIsAuthError(t *testing.T) {
	var tokenHits int32
	ts := newTestServer(t, &tokenHits, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer ts.Close()

	cl, err := amadeus.New(ts.URL, "key", "secret", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err = cl.ListByCity(context.Background(), "PAR")
	if !errors.Is(err, domain.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestListByCity_ServerError(t *testing.T) {
	var tokenHits int32
	ts := newTestServer(t, &tokenHits, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer ts.Close()

	cl, _ := amadeus.New(ts.URL, "key", "secret", 100)
	if _, err := cl.ListByCity(context.Background(), "PAR"); !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestLookupCity_FirstCityTypeWins(t *testing.T) {
	var tokenHits int32
	ts := newTestServer(t, &tokenHits, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"subType": "AIRPORT", "iataCode": "KEF"},
				{"subType": "CITY", "iataCode": "REK"},
			},
		})
	})
	defer ts.Close()

	cl, _ := amadeus.New(ts.URL, "key", "secret", 100)
	code, found, err := cl.LookupCity(context.Background(), "Reykjavik")
	if err != nil || !found || code != "REK" {
		t.Fatalf("want REK, got %q found=%v err=%v", code, found, err)
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	if _, err := amadeus.New("http://x", "", "", 5); err == nil {
		t.Fatalf("expected error for missing credentials")
	}
}
