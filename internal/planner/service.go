package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"travelbot/internal/ai"
)

// Sampling temperatures. Plan generation stays in the low-to-mid band for
// structured output; chat runs hotter for conversational variety.
const (
	planTemperature = 0.6
	chatTemperature = 0.9
)

// Service orchestrates prompt building, the provider call and response
// normalization. It holds no per-request state; concurrent calls are safe.
type Service struct {
	provider ai.Provider
}

// NewService creates a Service backed by the given provider.
func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// GeneratePlan asks the provider for an itinerary matching the preferences.
// Failures come back as *ErrorRecord: kind "transport" when the provider call
// itself failed, kind "parse_failure" when the reply was not recoverable
// structured data.
func (s *Service) GeneratePlan(ctx context.Context, prefs TripPreferences) (*Itinerary, error) {
	req := ai.Request{
		System:      BuildSystemInstruction(),
		Messages:    []ai.Message{{Role: ai.RoleUser, Content: BuildUserPrompt(prefs)}},
		Temperature: planTemperature,
		JSONOutput:  true,
	}

	raw, err := s.provider.Complete(ctx, req)
	if err != nil {
		log.Printf("AI Error: %v", err)
		return nil, &ErrorRecord{
			Kind:    KindTransport,
			Message: "trip plan generation failed, please try again",
		}
	}

	it, err := Normalize(raw)
	if err != nil {
		log.Printf("Normalize Error: %v", err)
		return nil, err
	}
	return it, nil
}

// Chat answers a follow-up question about an itinerary. The caller-supplied
// history passes through unmodified. The contract here is free-form text, so
// there is no normalization, and failures surface as a human-readable answer
// rather than an error to keep the conversational flow intact.
func (s *Service) Chat(ctx context.Context, itinerary *Itinerary, history []ConversationTurn, question string) string {
	messages := make([]ai.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, ai.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: question})

	req := ai.Request{
		System:      chatSystemInstruction(itinerary),
		Messages:    messages,
		Temperature: chatTemperature,
	}

	answer, err := s.provider.Complete(ctx, req)
	if err != nil {
		log.Printf("Chat Error: %v", err)
		return "Sorry, I could not answer that right now. Please try again in a moment."
	}
	return answer
}

// chatSystemInstruction scopes the assistant to the given itinerary,
// serialized to a compact JSON form.
func chatSystemInstruction(itinerary *Itinerary) string {
	plan := "{}"
	if itinerary != nil {
		if b, err := json.Marshal(itinerary); err == nil {
			plan = string(b)
		}
	}
	return fmt.Sprintf(`You are a helpful travel assistant. The user has the following trip plan:

%s

Answer the user's questions about this plan concisely and concretely. If a question falls outside the plan, relate your answer back to the planned destination and dates.`, plan)
}
