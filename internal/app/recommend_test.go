package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"trip_scout/internal/app"
	"trip_scout/internal/domain"
)

// ---- fakes ----

type fakeGen struct {
	text string
	err  error
}

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

type fakeImages struct {
	mu       sync.Mutex
	calls    []string
	failFor  string // substring of query that forces a failure
	blockFor string // substring of query that hangs until the context dies
	url      string
}

func (f *fakeImages) Search(ctx context.Context, query string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()
	if f.failFor != "" && strings.Contains(query, f.failFor) {
		return "", errors.New("image provider down")
	}
	if f.blockFor != "" && strings.Contains(query, f.blockFor) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.url, nil
}

func newSvc(gen domain.TextGenerator, img domain.ImageSearcher) *app.RecommendService {
	return app.NewRecommendService(gen, img, 3, 2*time.Second, 4)
}

// ---- tests ----

// Scenario A: clean 3-item array with distinct countries, image provider up.
func TestRecommend_CleanOutput(t *testing.T) {
	gen := &fakeGen{text: `Here you go:
[{"name": "Nice", "country": "France", "description": "coast"},
 {"name": "Kyoto", "country": "Japan", "description": "temples"},
 {"name": "Rome", "country": "Italy", "description": "ruins"}]`}
	img := &fakeImages{url: "https://img.example/1.jpg"}

	got := newSvc(gen, img).Recommend(context.Background(), domain.RecommendationRequest{
		Theme: "relaxation", Continent: "Europe",
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	countries := map[string]bool{}
	for _, c := range got {
		if c.Name == "" || c.Country == "" {
			t.Fatalf("partially-formed candidate: %+v", c)
		}
		if countries[strings.ToLower(c.Country)] {
			t.Fatalf("duplicate country: %+v", got)
		}
		countries[strings.ToLower(c.Country)] = true
		if c.Image != "https://img.example/1.jpg" {
			t.Fatalf("image enrichment missed: %+v", c)
		}
	}
}

// Scenario B: prose with no brackets degrades to exactly K placeholders.
func TestRecommend_ProseFallback(t *testing.T) {
	gen := &fakeGen{text: "I am sorry, I cannot produce a list right now."}
	img := &fakeImages{url: "https://img.example/1.jpg"}

	got := newSvc(gen, img).Recommend(context.Background(), domain.RecommendationRequest{Country: "Japan"})
	if len(got) != 3 {
		t.Fatalf("expected 3 placeholders, got %d", len(got))
	}
	for _, c := range got {
		if c.Name == "" || c.Country != "Japan" || c.Description == "" {
			t.Fatalf("placeholder lacks identity or failure reason: %+v", c)
		}
	}
}

func TestRecommend_GeneratorError(t *testing.T) {
	gen := &fakeGen{err: errors.New("backend down")}
	got := newSvc(gen, &fakeImages{}).Recommend(context.Background(), domain.RecommendationRequest{})
	if len(got) != 3 {
		t.Fatalf("expected 3 placeholders, got %d", len(got))
	}
	if !strings.Contains(got[0].Description, "backend down") {
		t.Fatalf("failure context not embedded: %+v", got[0])
	}
}

// Enrichment isolation: one forced image failure leaves every other
// candidate's image untouched and non-placeholder.
func TestRecommend_EnrichmentIsolation(t *testing.T) {
	gen := &fakeGen{text: `[{"name": "Nice", "country": "France"},
 {"name": "Kyoto", "country": "Japan"},
 {"name": "Rome", "country": "Italy"}]`}
	img := &fakeImages{url: "https://img.example/ok.jpg", failFor: "Kyoto"}

	got := newSvc(gen, img).Recommend(context.Background(), domain.RecommendationRequest{})
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	for _, c := range got {
		switch c.Name {
		case "Kyoto":
			if c.Image != domain.PlaceholderImage {
				t.Fatalf("failed lookup should yield placeholder: %+v", c)
			}
		default:
			if c.Image != "https://img.example/ok.jpg" {
				t.Fatalf("failure leaked into %s: %+v", c.Name, c)
			}
		}
	}
}

// A lookup that blows its per-call budget degrades exactly like an outright
// failure: that candidate gets the placeholder, the rest stay enriched.
func TestRecommend_EnrichmentTimeout(t *testing.T) {
	gen := &fakeGen{text: `[{"name": "Nice", "country": "France"},
 {"name": "Kyoto", "country": "Japan"},
 {"name": "Rome", "country": "Italy"}]`}
	img := &fakeImages{url: "https://img.example/ok.jpg", blockFor: "Kyoto"}
	svc := app.NewRecommendService(gen, img, 3, 100*time.Millisecond, 4)

	got := svc.Recommend(context.Background(), domain.RecommendationRequest{})
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	for _, c := range got {
		switch c.Name {
		case "Kyoto":
			if c.Image != domain.PlaceholderImage {
				t.Fatalf("timed-out lookup should yield placeholder: %+v", c)
			}
		default:
			if c.Image != "https://img.example/ok.jpg" {
				t.Fatalf("timeout leaked into %s: %+v", c.Name, c)
			}
		}
	}
}

func TestRecommend_NilImageProvider(t *testing.T) {
	gen := &fakeGen{text: `[{"name": "Nice", "country": "France"}]`}
	got := newSvc(gen, nil).Recommend(context.Background(), domain.RecommendationRequest{})
	if len(got) != 1 || got[0].Image != domain.PlaceholderImage {
		t.Fatalf("expected placeholder image without provider: %+v", got)
	}
}

// Scenario C: city detail with both description and image failing is still a
// well-formed object, never an error.
func TestCityDetail_TotalUpstreamFailure(t *testing.T) {
	gen := &fakeGen{err: errors.New("backend down")}
	img := &fakeImages{failFor: "Kyoto"}

	c, err := newSvc(gen, img).CityDetail(context.Background(), "Kyoto", "Japan")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Name != "Kyoto" || c.Country != "Japan" {
		t.Fatalf("requested identity lost: %+v", c)
	}
	if c.Description != "" || c.Image != domain.PlaceholderImage {
		t.Fatalf("expected empty description and placeholder image: %+v", c)
	}
}

func TestCityDetail_MissingInput(t *testing.T) {
	_, err := newSvc(&fakeGen{}, nil).CityDetail(context.Background(), "", "Japan")
	if !errors.Is(err, domain.ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestItinerary_FallbackKeepsDayCount(t *testing.T) {
	gen := &fakeGen{text: "no structure here"}
	plan, err := newSvc(gen, nil).Itinerary(context.Background(), "Kyoto", 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan) != 4 {
		t.Fatalf("expected 4 placeholder days, got %d", len(plan))
	}
	for i, d := range plan {
		if d.Day != i+1 {
			t.Fatalf("day numbering broken: %+v", plan)
		}
	}
}

func TestItinerary_ValidPlanSorted(t *testing.T) {
	gen := &fakeGen{text: `[{"day": 1, "schedule": [
  {"time": "18:00", "activity": "dinner"},
  {"time": "10:00", "activity": "shrine"}]}]`}
	plan, err := newSvc(gen, nil).Itinerary(context.Background(), "Kyoto", 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan) != 1 || plan[0].Schedule[0].Time != "10:00" {
		t.Fatalf("schedule not ordered: %+v", plan)
	}
}

func TestRecommend_CancelledContext(t *testing.T) {
	gen := &fakeGen{text: `[{"name": "Nice", "country": "France"}]`}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := newSvc(gen, &fakeImages{}).Recommend(ctx, domain.RecommendationRequest{}); got != nil {
		t.Fatalf("no result should be retained after cancellation, got %+v", got)
	}
}
