package unsplash_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip_scout/internal/adapters/unsplash"
)

func TestSearch_FirstResultURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("query"); q != "Kyoto Japan" {
			t.Errorf("query not forwarded: %q", q)
		}
		if auth := r.Header.Get("Authorization"); auth != "Client-ID test-key" {
			t.Errorf("unexpected auth header: %q", auth)
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"results": [{"urls": {"regular": "https://img.example/kyoto.jpg"}}]}`))
	}))
	defer ts.Close()

	cl, err := unsplash.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	url, err := cl.Search(ctx, "Kyoto Japan")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if url != "https://img.example/kyoto.jpg" {
		t.Fatalf("unexpected url: %s", url)
	}
}

func TestSearch_EmptyResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer ts.Close()

	cl, _ := unsplash.New(ts.URL, "test-key", 100)
	url, err := cl.Search(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("empty result is not an error: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url, got %s", url)
	}
}

func TestSearch_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	cl, _ := unsplash.New(ts.URL, "test-key", 100)
	if _, err := cl.Search(context.Background(), "anything"); err == nil {
		t.Fatalf("expected error for 403")
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := unsplash.New("http://x", "", 5); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
