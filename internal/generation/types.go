package generation

import "gemini-gateway/pkg/gemini"

// GenerateInput carries a prompt plus optional tuning/safety settings.
// Options are forwarded to the model verbatim.
type GenerateInput struct {
	Prompt           string
	GenerationConfig *gemini.GenerationConfig
	SafetySettings   []gemini.SafetySetting
}

// GenerateOutput is the result of a generation call.
type GenerateOutput struct {
	Text      string
	Model     string
	NoContent bool
}

// ModelOutput describes the bound remote model.
type ModelOutput struct {
	Model string
}
