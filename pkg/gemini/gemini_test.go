package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"gemini-gateway/pkg/gemini"
)

// newStubServer returns a deterministic generateContent stub driven by magic
// prompt strings, plus a counter of handled requests.
func newStubServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		prompt := req.Contents[0].Parts[0].Text

		switch {
		case strings.Contains(prompt, "cause_500"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":500,"message":"backend exploded","status":"INTERNAL"}}`))

		case strings.Contains(prompt, "cause_empty_parts"):
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[]},"finishReason":"STOP"}]}`))

		case strings.Contains(prompt, "cause_empty"):
			w.Write([]byte(`{"candidates":[]}`))

		case strings.Contains(prompt, "cause_blocked"):
			w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))

		case strings.Contains(prompt, "cause_safety_stop"):
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"partial"}]},"finishReason":"SAFETY"}]}`))

		case strings.Contains(prompt, "cause_garbage"):
			w.Write([]byte(`this is not json`))

		default:
			w.Write([]byte(`{
				"candidates": [
					{
						"content": {
							"role": "model",
							"parts": [{ "text": "a poem about " }, { "text": "the ocean" }]
						},
						"finishReason": "STOP"
					}
				],
				"usageMetadata": { "promptTokenCount": 4, "candidatesTokenCount": 8, "totalTokenCount": 12 }
			}`))
		}
	}))

	return ts, &calls
}

func newFacade(t *testing.T, apiURL string) *gemini.Client {
	t.Helper()
	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: apiURL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestGenerateText_ReturnsTextUnchanged(t *testing.T) {
	ts, _ := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)
	text, err := client.GenerateText(context.Background(), "Write a short poem about the ocean.", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "a poem about the ocean" {
		t.Errorf("expected concatenated candidate text, got %q", text)
	}
}

func TestGenerateText_EmptyResponseReturnsSentinel(t *testing.T) {
	ts, _ := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)

	for _, prompt := range []string{"cause_empty", "cause_empty_parts"} {
		text, err := client.GenerateText(context.Background(), prompt, nil, nil)
		if err != nil {
			t.Fatalf("prompt %q: unexpected error: %v", prompt, err)
		}
		if text != gemini.NoContentMessage {
			t.Errorf("prompt %q: expected sentinel %q, got %q", prompt, gemini.NoContentMessage, text)
		}
	}
}

func TestGenerateText_ProviderErrorIsWrapped(t *testing.T) {
	ts, _ := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)
	_, err := client.GenerateText(context.Background(), "cause_500", nil, nil)

	var genErr *gemini.ContentGenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected ContentGenerationError, got %v", err)
	}
	if genErr.Unwrap() == nil {
		t.Fatalf("expected wrapped cause")
	}
	if !strings.Contains(genErr.Unwrap().Error(), "backend exploded") {
		t.Errorf("expected original API error as cause, got %v", genErr.Unwrap())
	}
}

func TestGenerateText_UnexpectedErrorIsWrapped(t *testing.T) {
	ts, _ := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)

	// Garbage body triggers a decode error, not a provider error. It must
	// still surface as ContentGenerationError.
	_, err := client.GenerateText(context.Background(), "cause_garbage", nil, nil)
	var genErr *gemini.ContentGenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected ContentGenerationError for decode failure, got %v", err)
	}

	// Same for an unreachable server.
	dead := newFacade(t, "http://127.0.0.1:1")
	_, err = dead.GenerateText(context.Background(), "hello", nil, nil)
	if !errors.As(err, &genErr) {
		t.Fatalf("expected ContentGenerationError for transport failure, got %v", err)
	}
}

func TestGenerateText_OutcomeCheckedBeforeContent(t *testing.T) {
	ts, _ := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)

	t.Run("Blocked Prompt", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_blocked", nil, nil)
		var genErr *gemini.ContentGenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("expected ContentGenerationError, got %v", err)
		}
		if !errors.Is(err, gemini.ErrPromptBlocked) {
			t.Errorf("expected ErrPromptBlocked cause, got %v", err)
		}
	})

	t.Run("Safety Stop Hides Partial Text", func(t *testing.T) {
		// The stub returns partial text alongside a SAFETY finish
		// reason; the facade must fail instead of returning it.
		_, err := client.GenerateText(context.Background(), "cause_safety_stop", nil, nil)
		if !errors.Is(err, gemini.ErrGenerationStopped) {
			t.Fatalf("expected ErrGenerationStopped cause, got %v", err)
		}
	})
}

func TestGenerateText_EmptyPrompt(t *testing.T) {
	ts, calls := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)
	for _, prompt := range []string{"", "   \n\t"} {
		_, err := client.GenerateText(context.Background(), prompt, nil, nil)
		var genErr *gemini.ContentGenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("prompt %q: expected ContentGenerationError, got %v", prompt, err)
		}
		if !errors.Is(err, gemini.ErrEmptyPrompt) {
			t.Errorf("prompt %q: expected ErrEmptyPrompt cause, got %v", prompt, err)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("expected no upstream calls for empty prompts, got %d", calls.Load())
	}
}

func TestGenerateText_OptionsPassedThrough(t *testing.T) {
	var got gemini.GenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]},"finishReason":"STOP"}]}`))
	}))
	defer ts.Close()

	client := newFacade(t, ts.URL)
	genCfg := &gemini.GenerationConfig{Temperature: 0.9, TopP: 1, TopK: 1, MaxOutputTokens: 200}
	safety := []gemini.SafetySetting{{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"}}

	if _, err := client.GenerateText(context.Background(), "hello", genCfg, safety); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.GenerationConfig == nil || got.GenerationConfig.MaxOutputTokens != 200 {
		t.Errorf("generation config not passed through: %+v", got.GenerationConfig)
	}
	if len(got.SafetySettings) != 1 || got.SafetySettings[0].Threshold != "BLOCK_ONLY_HIGH" {
		t.Errorf("safety settings not passed through: %+v", got.SafetySettings)
	}
}

func TestGenerateText_Idempotent(t *testing.T) {
	ts, calls := newStubServer(t)
	defer ts.Close()

	client := newFacade(t, ts.URL)

	first, err := client.GenerateText(context.Background(), "same prompt", nil, nil)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := client.GenerateText(context.Background(), "same prompt", nil, nil)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first != second {
		t.Errorf("expected identical results, got %q then %q", first, second)
	}
	if calls.Load() != 2 {
		t.Errorf("expected exactly 2 upstream calls, got %d", calls.Load())
	}
}
