package gemini

import "context"

// IGemini defines the interface for the Gemini text generation client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateText forwards a prompt plus optional generation/safety
	// configuration to the remote model and returns the generated text.
	// A successful call with no text returns NoContentMessage.
	GenerateText(ctx context.Context, prompt string, genCfg *GenerationConfig, safety []SafetySetting) (string, error)

	// Model returns the model identifier being used.
	Model() string
}

var _ IGemini = (*Client)(nil)
