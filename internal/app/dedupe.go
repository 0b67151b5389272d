package app

import (
	"strings"

	"trip_scout/internal/domain"
)

// dedupeByCountry keeps the first candidate seen per case-normalized country,
// in extraction order, stopping once k distinct countries are retained.
// Strictly first-seen-wins; scores never re-rank. Fewer than k unique
// countries yields a shorter result, never a backfill.
func dedupeByCountry(in []domain.Candidate, k int) []domain.Candidate {
	seen := make(map[string]struct{}, k)
	out := make([]domain.Candidate, 0, k)
	for _, c := range in {
		key := strings.ToLower(strings.TrimSpace(c.Country))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) == k {
			break
		}
	}
	return out
}
