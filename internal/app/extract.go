package app

import (
	"encoding/json"
	"strings"
)

// Lenient structured-data recovery from generative text. The normalization
// pass is lossy on purpose: it trades semantic fidelity for parseability and
// must run before extraction, never after.

// normalizeText unifies quote characters and collapses literal newlines to
// spaces, after stripping any markdown code fences the model wrapped the
// payload in.
func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	s = strings.ReplaceAll(s, "'", `"`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// bracketSpan returns the substring from the first open bracket to the
// position where bracket depth returns to zero. Depth tracking matters: a
// greedy first-open-to-last-close match silently merges independent spans
// elsewhere in the text into one malformed blob. Quoted sections are skipped
// so brackets inside string values don't disturb the count.
func bracketSpan(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}
	depth := 0
	inStr := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch c {
			case '\\':
				i++
			case '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false // never closed
}

// extractArray recovers the first complete JSON array in raw generative text
// as a slice of loose records. A missing span or failed parse is an expected
// condition and yields nil, not an error.
func extractArray(text string) []map[string]any {
	span, ok := bracketSpan(normalizeText(text), '[', ']')
	if !ok {
		return nil
	}
	var out []map[string]any
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil
	}
	return out
}

// extractObject recovers the first complete JSON object, for single-entity
// flows like city detail.
func extractObject(text string) map[string]any {
	span, ok := bracketSpan(normalizeText(text), '{', '}')
	if !ok {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil
	}
	return out
}
