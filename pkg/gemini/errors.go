package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential indicates an empty or absent API key at
	// construction time. This is a caller error and is never retried.
	ErrInvalidCredential = errors.New("gemini: API key cannot be empty")

	// ErrEmptyPrompt indicates a generation call with an empty prompt.
	ErrEmptyPrompt = errors.New("gemini: prompt cannot be empty")

	// ErrPromptBlocked indicates the API refused the prompt before
	// generating anything.
	ErrPromptBlocked = errors.New("gemini: prompt blocked by safety filter")

	// ErrGenerationStopped indicates generation was cut off for a
	// non-success reason (safety, recitation, ...).
	ErrGenerationStopped = errors.New("gemini: generation stopped")
)

// ModelInitializationError wraps any failure while acquiring the handle to
// the named remote model at construction time.
type ModelInitializationError struct {
	Model string
	Err   error
}

func (e *ModelInitializationError) Error() string {
	return fmt.Sprintf("gemini: failed to initialize model %q: %v", e.Model, e.Err)
}

func (e *ModelInitializationError) Unwrap() error {
	return e.Err
}

// ContentGenerationError wraps any failure during a generation call —
// provider errors, transport errors, or anything unexpected. Callers only
// ever need to handle this one kind; the original cause is preserved via
// Unwrap.
type ContentGenerationError struct {
	Err error
}

func (e *ContentGenerationError) Error() string {
	return fmt.Sprintf("gemini: content generation failed: %v", e.Err)
}

func (e *ContentGenerationError) Unwrap() error {
	return e.Err
}
