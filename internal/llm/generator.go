// Package llm wraps the text-generation collaborator behind a small
// interface so the request pipeline can be tested with deterministic fakes.
// The collaborator is opaque, fallible and non-deterministic; nothing in
// this package assumes idempotence from it.
package llm

import "context"

// Request describes a single, stateless generation exchange. No
// conversation history is carried across calls.
type Request struct {
	// System is the system instruction. Empty means none.
	System string

	// Prompt is the user message.
	Prompt string

	// JSONOutput constrains the provider to application/json output.
	// When false the response is plain text.
	JSONOutput bool
}

// Generator is the boundary to the generation collaborator. Generate
// returns the raw response text or a *GenerationError on any transport or
// provider failure, including provider-side timeouts.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
