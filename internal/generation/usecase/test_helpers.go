package usecase

import (
	"context"

	"gemini-gateway/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client for testing
type mockGeminiClient struct {
	text  string
	err   error
	model string

	lastPrompt string
	lastGenCfg *gemini.GenerationConfig
	lastSafety []gemini.SafetySetting
	calls      int
}

func (m *mockGeminiClient) GenerateText(ctx context.Context, prompt string, genCfg *gemini.GenerationConfig, safety []gemini.SafetySetting) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastGenCfg = genCfg
	m.lastSafety = safety
	return m.text, m.err
}

func (m *mockGeminiClient) Model() string {
	if m.model == "" {
		return "gemini-test"
	}
	return m.model
}
