package ai

// Role values used on the wire. RoleAssistant is translated to each
// provider's own naming (Gemini calls it "model").
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation passed to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures everything a single completion call needs.
type Request struct {
	// System is the system instruction; empty means none.
	System string

	// Messages is the conversation so far, oldest first. The last message
	// must be from the user. Callers pass history through verbatim; no
	// ordering is enforced here.
	Messages []Message

	// Temperature controls sampling. Generation uses a low-to-mid value for
	// structured output, chat a higher one for conversational variety.
	Temperature float32

	// JSONOutput asks the provider for a pure JSON reply with no prose.
	JSONOutput bool
}
