package gemini

import (
	"context"
	"fmt"
	"strings"
)

// GenerateText forwards a prompt plus optional generation/safety
// configuration to the remote model and returns the generated text.
//
// Result policy: a successful call with non-empty text returns that text
// unchanged; a successful call with no text returns NoContentMessage. Every
// failure — provider errors, transport errors, anything unexpected — comes
// back as a ContentGenerationError wrapping the original cause, so callers
// handle exactly one error kind here.
func (c *Client) GenerateText(ctx context.Context, prompt string, genCfg *GenerationConfig, safety []SafetySetting) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &ContentGenerationError{Err: ErrEmptyPrompt}
	}

	req := GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: genCfg,
		SafetySettings:   safety,
	}

	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return "", &ContentGenerationError{Err: err}
	}

	// Outcome status is checked before any content is read: a blocked
	// prompt or a non-success finish reason is a failure, never partial
	// data.
	if err := checkOutcome(resp); err != nil {
		return "", &ContentGenerationError{Err: err}
	}

	text := extractText(resp)
	if text == "" {
		return NoContentMessage, nil
	}
	return text, nil
}

// checkOutcome inspects the response status signals.
func checkOutcome(resp *GenerateResponse) error {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("%w: %s", ErrPromptBlocked, resp.PromptFeedback.BlockReason)
	}

	for _, cand := range resp.Candidates {
		switch cand.FinishReason {
		case "", "STOP", "MAX_TOKENS":
			// Success outcomes. MAX_TOKENS still carries usable text.
		default:
			return fmt.Errorf("%w: %s", ErrGenerationStopped, cand.FinishReason)
		}
	}

	return nil
}

// extractText concatenates the text parts of the first candidate. An empty
// result means the call succeeded without producing text.
func extractText(resp *GenerateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
