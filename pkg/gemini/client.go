package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Config holds the settings for a Gemini client.
type Config struct {
	// APIKey authenticates calls to the Gemini API. Required.
	APIKey string

	// Model is the model identifier to invoke. Defaults to DefaultModel.
	Model string

	// APIURL overrides the API base URL. Defaults to DefaultAPIURL.
	APIURL string

	// HTTPClient overrides the HTTP client. Defaults to a client with
	// DefaultTimeout.
	HTTPClient *http.Client
}

// Validate checks the config for caller errors.
func (cfg Config) Validate() error {
	if cfg.APIKey == "" {
		return ErrInvalidCredential
	}
	return nil
}

// Client is the Gemini Generative Language API client. The credential and
// model handle are fixed at construction; every call is stateless, so a
// Client is safe for concurrent use.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// New creates a new Gemini client from the given config. It fails with
// ErrInvalidCredential if the API key is empty, and with a
// ModelInitializationError if the model handle cannot be built.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	endpoint, err := buildEndpoint(cfg.APIURL, cfg.Model)
	if err != nil {
		return nil, &ModelInitializationError{Model: cfg.Model, Err: err}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		model:      cfg.Model,
		endpoint:   endpoint,
		httpClient: cfg.HTTPClient,
	}, nil
}

// NewClient creates a new Gemini client with the given API key and the
// default model.
func NewClient(apiKey string) (*Client, error) {
	return New(Config{APIKey: apiKey})
}

// Model returns the model identifier being used.
func (c *Client) Model() string {
	return c.model
}

// SetAPIURL overrides the API base URL. Intended for tests against a mock
// server; the rebuilt endpoint keeps the configured model.
func (c *Client) SetAPIURL(apiURL string) {
	if endpoint, err := buildEndpoint(apiURL, c.model); err == nil {
		c.apiURL = apiURL
		c.endpoint = endpoint
	}
}

// buildEndpoint resolves the generateContent URL for the named model. This
// is the model-handle acquisition step: an unparseable base URL or a
// malformed model identifier fails here, before any call is attempted.
func buildEndpoint(apiURL, model string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("API URL %q is not absolute", apiURL)
	}

	if model == "" {
		return "", fmt.Errorf("model name is empty")
	}
	if strings.ContainsAny(model, "/?#& \t\n") {
		return "", fmt.Errorf("invalid model name %q", model)
	}

	return fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(apiURL, "/"), model), nil
}

// GenerateContent sends a raw content generation request to the Gemini API.
// Transport and API-level failures are returned as plain errors; callers
// wanting the normalized error taxonomy should use GenerateText.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var errBody apiErrorBody
		if jsonErr := json.Unmarshal(raw, &errBody); jsonErr == nil && errBody.Error.Message != "" {
			return nil, fmt.Errorf("gemini API error %d (%s): %s",
				resp.StatusCode, errBody.Error.Status, errBody.Error.Message)
		}
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	return &result, nil
}
