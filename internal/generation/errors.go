package generation

import "errors"

var (
	ErrEmptyPrompt = errors.New("prompt is required")
)
