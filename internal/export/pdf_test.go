package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"travelbot/internal/planner"
)

func TestPDF_FullItinerary(t *testing.T) {
	it := &planner.Itinerary{
		Destination: "Lisbon",
		Summary:     "Three sunny days by the Tagus.",
		Days: []planner.DayPlan{
			{Day: 1, Theme: "Alfama", Activities: planner.ActivityList{"Tram 28", "Castle of Sao Jorge"}},
			{Day: 2, Theme: "Belem", Activities: planner.ActivityList{"Pasteis de Belem"}},
		},
	}

	data, err := PDF(it)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF document")
	}
}

func TestPDF_NilItinerary(t *testing.T) {
	data, err := PDF(nil)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("nil itinerary should still render a near-empty document")
	}
}

func TestPDF_SingleStringActivities(t *testing.T) {
	// The wire format may carry activities as a bare string; the decoded
	// itinerary must render it as one line without raising.
	raw := `{"destination":"Oslo","summary":"s","itinerary":[{"day":1,"theme":"Fjords","activities":"Boat tour"}]}`
	var it planner.Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, err := PDF(&it); err != nil {
		t.Fatalf("PDF: %v", err)
	}
}

func TestPDF_UnsupportedCharacters(t *testing.T) {
	it := &planner.Itinerary{
		Destination: "東京",
		Summary:     "Sushi 🍣 and shrines ⛩️",
		Days: []planner.DayPlan{
			{Day: 1, Theme: "秋葉原", Activities: planner.ActivityList{"買い物"}},
		},
	}

	data, err := PDF(it)
	if err != nil {
		t.Fatalf("PDF must substitute unsupported characters, not fail: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty document")
	}
}

func TestLatin1Downgrade(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain ascii", "plain ascii"},
		// latin-1 output is single-byte, so é comes back as 0xE9.
		{"café", "caf\xe9"},
		{"東京", "??"},
		{"a\tb\nc", "a\tb\nc"},
		{"mix 東 end", "mix ? end"},
	}
	for _, tt := range tests {
		if got := latin1(tt.in); got != tt.want {
			t.Errorf("latin1(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
