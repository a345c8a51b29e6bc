package util

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTopic       = errors.New("please enter a valid learning topic, for example: 'Python Programming', 'Data Science', 'Machine Learning'")
)

// SchemaError means the generator violated its declared output contract.
// The raw response is kept for logging; it is never partially returned.
type SchemaError struct {
	Raw string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("generator returned invalid roadmap JSON: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// TranslationError means both the batch call and the per-segment fallback
// failed to produce a full set of translations.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }
