package usecase

import (
	"context"
	"errors"
	"strings"

	"gemini-gateway/internal/generation"
	"gemini-gateway/pkg/gemini"
)

// Generate validates the input and delegates to the Gemini client.
func (uc *implUseCase) Generate(ctx context.Context, input generation.GenerateInput) (generation.GenerateOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return generation.GenerateOutput{}, generation.ErrEmptyPrompt
	}

	text, err := uc.llm.GenerateText(ctx, input.Prompt, input.GenerationConfig, input.SafetySettings)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate GenerateText: %v", err)

		if errors.Is(err, gemini.ErrEmptyPrompt) {
			return generation.GenerateOutput{}, generation.ErrEmptyPrompt
		}
		return generation.GenerateOutput{}, err
	}

	out := generation.GenerateOutput{
		Text:  text,
		Model: uc.llm.Model(),
	}
	if text == gemini.NoContentMessage {
		out.NoContent = true
	}

	uc.l.Infof(ctx, "uc.Generate: model=%s no_content=%t", out.Model, out.NoContent)
	return out, nil
}

// ModelInfo reports the bound remote model.
func (uc *implUseCase) ModelInfo(ctx context.Context) (generation.ModelOutput, error) {
	return generation.ModelOutput{Model: uc.llm.Model()}, nil
}
