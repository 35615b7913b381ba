package planner

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNormalize_CleanJSON(t *testing.T) {
	raw := `{"destination":"Paris","summary":"s","itinerary":[{"day":1,"theme":"Arrival","activities":["Check in","Walk the Seine"]}]}`

	it, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if it.Destination != "Paris" || it.Summary != "s" {
		t.Errorf("unexpected itinerary header: %+v", it)
	}
	if len(it.Days) != 1 || it.Days[0].Day != 1 || len(it.Days[0].Activities) != 2 {
		t.Errorf("unexpected days: %+v", it.Days)
	}
}

func TestNormalize_RoundTripIdempotent(t *testing.T) {
	original := &Itinerary{
		Destination: "Kyoto",
		Summary:     "Temples and tea",
		Days: []DayPlan{
			{Day: 1, Theme: "Old town", Activities: ActivityList{"Fushimi Inari", "Kaiseki dinner"}},
			{Day: 2, Theme: "Gardens", Activities: ActivityList{"Ryoan-ji"}},
		},
	}

	serialized, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := Normalize(string(serialized))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("round trip changed itinerary:\n got %+v\nwant %+v", got, original)
	}
}

func TestNormalize_Recovery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "labeled fence",
			raw:  "```json\n{\"destination\":\"Paris\",\"summary\":\"s\",\"itinerary\":[]}\n```",
		},
		{
			name: "unlabeled fence",
			raw:  "```\n{\"destination\":\"Paris\",\"summary\":\"s\",\"itinerary\":[]}\n```",
		},
		{
			name: "surrounding prose",
			raw:  `Here is your plan: {"destination":"Paris","summary":"s","itinerary":[]} Enjoy!`,
		},
		{
			name: "prose before fenced block",
			raw:  "Sure! Here you go:\n```json\n{\"destination\":\"Paris\",\"summary\":\"s\",\"itinerary\":[]}\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if it.Destination != "Paris" || it.Summary != "s" || len(it.Days) != 0 {
				t.Errorf("unexpected result: %+v", it)
			}
		})
	}
}

func TestNormalize_ActivitiesAsSingleString(t *testing.T) {
	raw := `{"destination":"Oslo","summary":"s","itinerary":[{"day":1,"theme":"Fjords","activities":"Boat tour"}]}`

	it, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := ActivityList{"Boat tour"}
	if !reflect.DeepEqual(it.Days[0].Activities, want) {
		t.Errorf("activities = %v, want %v", it.Days[0].Activities, want)
	}
}

func TestNormalize_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no braces at all", raw: "Sorry, I cannot help."},
		{name: "empty input", raw: ""},
		{name: "truncated object", raw: `{"destination":"Paris","summary":`},
		{name: "legacy schema variant", raw: `{"trip_title":"Trip","daily_itinerary":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			var record *ErrorRecord
			if !errors.As(err, &record) {
				t.Fatalf("expected *ErrorRecord, got %T", err)
			}
			if record.Kind != KindParseFailure {
				t.Errorf("kind = %q, want %q", record.Kind, KindParseFailure)
			}
			if record.Raw != tt.raw {
				t.Errorf("raw not preserved verbatim: %q", record.Raw)
			}
		})
	}
}
