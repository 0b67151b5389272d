package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"trip_scout/internal/adapters/observability"
	"trip_scout/internal/domain"
)

// Enrichment fan-out. Every provider attempt for every candidate runs as its
// own task with its own timeout; a task resolves to either a value or a
// placeholder, never to a fatal state, so one failure cannot touch any other
// candidate or any other provider's result.

type enricher struct {
	images  domain.ImageSearcher
	timeout time.Duration
	sem     *semaphore.Weighted
}

func newEnricher(images domain.ImageSearcher, timeout time.Duration, workers int) *enricher {
	if workers <= 0 {
		workers = 8
	}
	return &enricher{
		images:  images,
		timeout: timeout,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// enrichImages sets each candidate's image from the image provider, in place.
// Query is name + country (+ optional region). Failure, timeout or an empty
// result leaves the placeholder; candidates that already carry a model-given
// image URL keep it only if the provider has nothing better.
func (e *enricher) enrichImages(ctx context.Context, cs []domain.Candidate, region string) {
	if e.images == nil || len(cs) == 0 {
		return
	}
	g, ctx := errgroup.WithContext(ctx)
	for i := range cs {
		g.Go(func() error {
			if err := e.sem.Acquire(ctx, 1); err != nil {
				return nil // cancelled; keep placeholder
			}
			defer e.sem.Release(1)

			query := cs[i].Name + " " + cs[i].Country
			if region != "" {
				query += " " + region
			}
			url, err := e.searchOne(ctx, query)
			if err != nil || url == "" {
				if err != nil {
					log.Debug().Err(err).Str("query", query).Msg("image lookup degraded")
					observability.ObserveDegradation("image")
				}
				if cs[i].Image == "" {
					cs[i].Image = domain.PlaceholderImage
				}
				return nil
			}
			cs[i].Image = url
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors; Wait only joins
}

// searchOne wraps a single provider call in its own deadline. Exceeding the
// budget is treated identically to a provider error.
func (e *enricher) searchOne(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.images.Search(ctx, query)
}
