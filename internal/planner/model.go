package planner

import (
	"encoding/json"
	"fmt"
)

// TripPreferences is the traveler's stated input, created by the boundary
// layer and consumed once when building the prompt.
type TripPreferences struct {
	Destination    string   `json:"destination" binding:"required"`
	Budget         string   `json:"budget" binding:"required"`
	RecreationType string   `json:"recreation_type"`
	Interests      []string `json:"interests"`
	DateRange      string   `json:"date_range" binding:"required"`
	TravelersCount int      `json:"travelers_count" binding:"required,gt=0"`
	Diet           string   `json:"diet"`
	AdditionalInfo string   `json:"additional_info"`
}

// Itinerary is the normalized, structured multi-day trip plan. This is the
// canonical schema; the normalizer rejects the older
// trip_title/daily_itinerary variant rather than supporting both.
type Itinerary struct {
	Destination string    `json:"destination"`
	Summary     string    `json:"summary"`
	Days        []DayPlan `json:"itinerary"`
}

// DayPlan is one day of an itinerary.
type DayPlan struct {
	Day        int          `json:"day"`
	Theme      string       `json:"theme"`
	Activities ActivityList `json:"activities"`
}

// ActivityList tolerates the model emitting a bare string where an array of
// strings was asked for. It is canonicalized to a sequence at unmarshal time,
// so downstream components only ever see one shape.
type ActivityList []string

func (a *ActivityList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = ActivityList{single}
		return nil
	}
	return fmt.Errorf("activities: expected string or array of strings, got %s", data)
}

// ConversationTurn is one entry of a chat transcript. History is passed
// through to the provider verbatim; ordering is not enforced.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Error kinds carried by an ErrorRecord.
const (
	KindTransport    = "transport"
	KindParseFailure = "parse_failure"
	KindExport       = "export"
)

// ErrorRecord is a typed failure value: a kind tag, a human-readable message
// and, for parse failures, the offending raw provider text for diagnostics.
type ErrorRecord struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Raw     string `json:"raw,omitempty"`
}

func (e *ErrorRecord) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
