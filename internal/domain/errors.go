package domain

import "errors"

// Error taxonomy. Provider failures inside the enrichment pipeline never
// surface as errors at all (they degrade to placeholders); these sentinels
// cover the cases that do propagate.
var (
	// ErrBadInput: missing or invalid required request fields. Rejected
	// outright, never degraded to placeholders.
	ErrBadInput = errors.New("trip: invalid input")

	// ErrProvider: an upstream call failed or timed out, for an operation
	// with no meaningful partial result.
	ErrProvider = errors.New("trip: provider unavailable")

	// ErrResolution: a city name resolved through neither the local table
	// nor the remote lookup.
	ErrResolution = errors.New("trip: city resolution failed")

	// ErrAuth: credential or token failure. Surfaced, never degraded; it
	// means misconfiguration rather than transient unavailability.
	ErrAuth = errors.New("trip: authentication failed")
)
