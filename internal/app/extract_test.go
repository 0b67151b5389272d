package app

import "testing"

func TestExtractArray_InsideProse(t *testing.T) {
	text := `Sure! Here are my picks:
[{"name": "Kyoto", "country": "Japan", "description": "temples"}]
Hope that helps [1] (see notes).`

	got := extractArray(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0]["name"] != "Kyoto" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
}

// Two independent arrays in one response: a greedy first-open-to-last-close
// match would merge them into one malformed span. Depth scanning must return
// exactly the first.
func TestExtractArray_MultipleSpans(t *testing.T) {
	text := `[{"name": "Nice", "country": "France"}] and also [{"name": "Rome", "country": "Italy"}]`

	got := extractArray(text)
	if len(got) != 1 {
		t.Fatalf("expected exactly the first array, got %d records", len(got))
	}
	if got[0]["name"] != "Nice" {
		t.Fatalf("expected first span, got %+v", got[0])
	}
}

func TestExtractArray_BracketsInsideStrings(t *testing.T) {
	text := `[{"name": "Paris", "country": "France", "description": "home of the Louvre [world famous]"}]`

	got := extractArray(text)
	if len(got) != 1 || got[0]["name"] != "Paris" {
		t.Fatalf("brackets inside string values broke the scan: %+v", got)
	}
}

func TestExtractArray_NoSpanOrInvalid(t *testing.T) {
	for _, text := range []string{
		"I could not produce a list this time, sorry.",
		"[ this opens but never closes",
		`[{"name": oops not json}]`,
	} {
		if got := extractArray(text); got != nil {
			t.Fatalf("expected nil for %q, got %+v", text, got)
		}
	}
}

func TestExtractArray_MarkdownFenceAndQuotes(t *testing.T) {
	text := "```json\n[{'name': 'Busan', 'country': 'South Korea'}]\n```"

	got := extractArray(text)
	if len(got) != 1 || got[0]["name"] != "Busan" {
		t.Fatalf("fenced single-quoted payload not recovered: %+v", got)
	}
}

func TestExtractObject(t *testing.T) {
	text := `The city: {"name": "Kyoto", "country": "Japan"} — enjoy {and this stray brace}`

	got := extractObject(text)
	if got == nil || got["name"] != "Kyoto" {
		t.Fatalf("unexpected object: %+v", got)
	}

	if got := extractObject("no braces at all"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestNormalizeText_NewlinesCollapsed(t *testing.T) {
	in := "[{\"name\": \"A\r\nB\",\n\"country\": \"C\"}]"
	out := normalizeText(in)
	for _, c := range out {
		if c == '\n' || c == '\r' {
			t.Fatalf("normalized text still contains newlines: %q", out)
		}
	}
}
