// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"trip_scout/internal/app"
	"trip_scout/internal/domain"
)

// Handlers are thin bindings: decode, validate client input, call the
// orchestrator, encode. All pipeline logic lives in internal/app.
type Handlers struct {
	Reco *app.RecommendService
	Book *app.BookingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/recommend", h.recommend)
	s.mux.Post("/city", h.cityDetail)
	s.mux.Post("/itinerary", h.itinerary)
	s.mux.Get("/flights", h.flights)
	s.mux.Get("/hotels", h.hotels)
	s.mux.Get("/route", h.route)
	s.mux.Get("/transit", h.transit)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Error: detail}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeOpError maps the error taxonomy onto HTTP statuses: client input 400,
// resolution 422, auth 502 (upstream misconfiguration from the caller's view),
// everything else 502.
func writeOpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadInput):
		writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, domain.ErrResolution):
		writeProblem(w, http.StatusUnprocessableEntity, "Resolution failed", err.Error())
	case errors.Is(err, domain.ErrAuth):
		writeProblem(w, http.StatusBadGateway, "Upstream authentication failed", err.Error())
	default:
		writeProblem(w, http.StatusBadGateway, "Upstream failure", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "body must be JSON")
		return
	}
	// never errs: degraded output keeps the declared shape
	writeJSON(w, h.Reco.Recommend(r.Context(), req))
}

func (h *Handlers) cityDetail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "body must be JSON")
		return
	}
	c, err := h.Reco.CityDetail(r.Context(), req.City, req.Country)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, c)
}

func (h *Handlers) itinerary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City string `json:"city"`
		Days int    `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "body must be JSON")
		return
	}
	plan, err := h.Reco.Itinerary(r.Context(), req.City, req.Days)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, plan)
}

func (h *Handlers) flights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	adults := 1
	if a := q.Get("adults"); a != "" {
		n, err := strconv.Atoi(a)
		if err != nil || n <= 0 || n > 9 {
			writeProblem(w, http.StatusBadRequest, "Invalid adults", "adults must be an integer between 1 and 9")
			return
		}
		adults = n
	}
	offers, err := h.Book.SearchFlights(r.Context(), q.Get("origin"), q.Get("destination"), q.Get("date"), q.Get("returnDate"), adults)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, offers)
}

func (h *Handlers) hotels(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Book.ListHotels(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, hs)
}

func (h *Handlers) route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rr, err := h.Book.DriveRoute(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, rr)
}

func (h *Handlers) transit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	plans, err := h.Book.TransitPlan(r.Context(), q.Get("start"), q.Get("end"), q.Get("date"), q.Get("time"))
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, plans)
}
