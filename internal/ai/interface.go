package ai

import (
	"context"
)

// Provider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type Provider interface {
	// Complete issues one synchronous completion request and returns the
	// reply's text content. At most one attempt per call; transport and
	// provider failures are returned as errors, never encoded in the text.
	Complete(ctx context.Context, req Request) (string, error)
}
