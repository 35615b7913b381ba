package planner

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Normalize coerces a raw model reply into an Itinerary. Attempts run from
// least to most aggressive so truncated or malformed data is never silently
// accepted:
//
//  1. strict parse of the raw text as-is
//  2. strict parse after stripping markdown code fences
//  3. strict parse of the first-{ to last-} substring of the raw text
//
// On failure the returned error is an *ErrorRecord with the full original
// text preserved for diagnostics.
func Normalize(raw string) (*Itinerary, error) {
	if it, err := parseStrict(raw); err == nil {
		return it, nil
	}

	if it, err := parseStrict(stripFences(raw)); err == nil {
		return it, nil
	}

	// Last resort: the model wrapped the JSON in prose. Extract the outermost
	// brace-delimited span of the original text.
	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && start < end {
		if it, err := parseStrict(raw[start : end+1]); err == nil {
			return it, nil
		}
	}

	return nil, &ErrorRecord{
		Kind:    KindParseFailure,
		Message: "model reply is not a valid itinerary",
		Raw:     raw,
	}
}

// parseStrict accepts only the canonical schema: unknown fields (such as the
// legacy trip_title/daily_itinerary shape) and trailing data are errors.
func parseStrict(text string) (*Itinerary, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	var it Itinerary
	if err := dec.Decode(&it); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after itinerary JSON")
	}
	return &it, nil
}

// stripFences removes a leading ```json or ``` marker and a trailing ```
// if present (e.g. ```json ... ```).
func stripFences(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
