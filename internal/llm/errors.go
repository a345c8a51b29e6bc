package llm

import "fmt"

// GenerationError indicates a transport or provider-level failure of the
// generation collaborator. It is surfaced to the caller, never retried
// here; the one fallback path lives in the translate validator.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "generation failed"
	}
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
