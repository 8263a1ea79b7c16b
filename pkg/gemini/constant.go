package gemini

import "time"

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-1.5-pro-latest"

	// DefaultAPIURL is the default Gemini API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// NoContentMessage is returned when a generation call succeeds but the
	// model produced no text. Empty-but-successful responses are a defined
	// outcome, not an error.
	NoContentMessage = "No content generated."
)
