package http

import (
	"gemini-gateway/internal/generation"
	"gemini-gateway/pkg/gemini"
)

// --- Request DTOs ---

type generateReq struct {
	Prompt           string            `json:"prompt" binding:"required"`
	GenerationConfig *generationConfig `json:"generation_config,omitempty"`
	SafetySettings   []safetySetting   `json:"safety_settings,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"top_p,omitempty"`
	TopK            int     `json:"top_k,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"`
}

type safetySetting struct {
	Category  string `json:"category"  binding:"required"`
	Threshold string `json:"threshold" binding:"required"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() generation.GenerateInput {
	input := generation.GenerateInput{Prompt: r.Prompt}

	if r.GenerationConfig != nil {
		input.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     r.GenerationConfig.Temperature,
			TopP:            r.GenerationConfig.TopP,
			TopK:            r.GenerationConfig.TopK,
			MaxOutputTokens: r.GenerationConfig.MaxOutputTokens,
		}
	}

	for _, s := range r.SafetySettings {
		input.SafetySettings = append(input.SafetySettings, gemini.SafetySetting{
			Category:  s.Category,
			Threshold: s.Threshold,
		})
	}

	return input
}

// --- Response DTOs ---

type generateResp struct {
	Text      string `json:"text"`
	Model     string `json:"model"`
	NoContent bool   `json:"no_content"`
}

func (h *handler) newGenerateResp(output generation.GenerateOutput) generateResp {
	return generateResp{
		Text:      output.Text,
		Model:     output.Model,
		NoContent: output.NoContent,
	}
}

type modelResp struct {
	Model string `json:"model"`
}
