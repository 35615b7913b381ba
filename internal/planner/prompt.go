package planner

import (
	"fmt"
	"strings"
)

// unspecified is rendered for empty optional fields so the prompt text is
// always well-formed.
const unspecified = "unspecified"

// systemInstruction pins the exact output schema the model must produce.
// Providers still wrap replies in prose or fences often enough that the
// normalizer stays defensive regardless.
const systemInstruction = `You are an expert travel planner. Your task is to prepare a detailed multi-day trip plan.

THE REQUIRED RESPONSE FORMAT IS PURE JSON (no markdown fences, no surrounding prose).
The JSON structure must be exactly:
{
    "destination": "Name of the destination",
    "summary": "A short paragraph about the character of the trip",
    "itinerary": [
        {
            "day": 1,
            "theme": "Main focus of the day",
            "activities": [
                "Description of the first activity",
                "Description of the second activity"
            ]
        }
    ]
}
Every element of "activities" must be a plain string. Output nothing besides the JSON object.`

// BuildSystemInstruction returns the fixed instruction describing the
// required output schema.
func BuildSystemInstruction() string {
	return systemInstruction
}

// BuildUserPrompt interpolates every preference field into a natural-language
// request. Free text passes through as-is; the gateway is the trust boundary.
func BuildUserPrompt(prefs TripPreferences) string {
	interests := strings.Join(prefs.Interests, ", ")
	return fmt.Sprintf(`Please plan a trip based on the following data:

- Destination: %s
- Dates: %s
- Number of travelers: %d
- Budget: %s
- Recreation type: %s
- Interests: %s

Additional information:
- Diet: %s
- Notes: %s

Prepare a plan tailored exactly to these criteria.`,
		orUnspecified(prefs.Destination),
		orUnspecified(prefs.DateRange),
		prefs.TravelersCount,
		orUnspecified(prefs.Budget),
		orUnspecified(prefs.RecreationType),
		orUnspecified(interests),
		orUnspecified(prefs.Diet),
		orUnspecified(prefs.AdditionalInfo),
	)
}

func orUnspecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return unspecified
	}
	return v
}
