package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the public Gemini API prefix. Tests point the client at an
// httptest server instead.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const bodySnippetLimit = 200

// GeminiConfig carries the values the client needs from the process
// configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiClient implements Client against the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	policy  RetryPolicy
}

// NewGeminiClient creates a Gemini client. The http.Client owns the request
// timeout; policy bounds retries of transient failures.
func NewGeminiClient(cfg GeminiConfig, httpClient *http.Client, logger *slog.Logger, policy RetryPolicy) *GeminiClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: baseURL,
		client:  httpClient,
		logger:  logger,
		policy:  policy,
	}
}

// geminiRequest is the request payload for generateContent.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiSchema struct {
	Type        string                   `json:"type"`
	Description string                   `json:"description,omitempty"`
	Properties  map[string]*geminiSchema `json:"properties,omitempty"`
	Items       *geminiSchema            `json:"items,omitempty"`
	Required    []string                 `json:"required,omitempty"`
}

// geminiResponse is the response payload from generateContent.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// ideaSchema asks the model for JSON holding the concept echoed back plus a
// list of category/points angles.
var ideaSchema = &geminiSchema{
	Type: "OBJECT",
	Properties: map[string]*geminiSchema{
		"idea": {
			Type:        "STRING",
			Description: "The original concept provided by the user",
		},
		"angles": {
			Type:        "ARRAY",
			Description: "A list of distinct brainstorming angles for the concept",
			Items: &geminiSchema{
				Type: "OBJECT",
				Properties: map[string]*geminiSchema{
					"category": {
						Type:        "STRING",
						Description: "The name of the brainstorming category (e.g., Target Users, Business Models)",
					},
					"points": {
						Type:        "ARRAY",
						Description: "3-5 specific bullet points for this category",
						Items:       &geminiSchema{Type: "STRING"},
					},
				},
				Required: []string{"category", "points"},
			},
		},
	},
	Required: []string{"idea", "angles"},
}

var safetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

// Generate sends the prompt to the Gemini API and returns the model's raw
// text. Transient failures are retried per the client's policy; auth and
// service faults surface immediately.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &AuthError{Reason: "GOOGLE_API_KEY is not set"}
	}

	policy := c.policy.withDefaults()
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := c.doRequest(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if attempt == policy.MaxAttempts || !retryable(ctx, err) {
			return "", err
		}
		delay := policy.delayFor(attempt, err)
		if c.logger != nil {
			c.logger.Warn("retrying generate request",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", policy.MaxAttempts),
				slog.Duration("retry_in", delay),
				slog.String("error", err.Error()))
		}
		if err := policy.Sleep(ctx, delay); err != nil {
			return "", err
		}
	}
}

func (c *GeminiClient) doRequest(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   ideaSchema,
		},
		SafetySettings: safetySettings,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &AuthError{Reason: fmt.Sprintf("endpoint rejected API key (status %d)", resp.StatusCode)}
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, ok := parseRetryAfter(resp.Header, time.Now())
		return "", &RateLimitError{
			RetryAfter:    retryAfter,
			HasRetryAfter: ok,
			Body:          bodySnippet(body),
		}
	case resp.StatusCode != http.StatusOK:
		return "", &ServiceError{StatusCode: resp.StatusCode, Reason: bodySnippet(body)}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ServiceError{Reason: "malformed response body: " + err.Error()}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
			return "", &ServiceError{Reason: "prompt blocked: " + parsed.PromptFeedback.BlockReason}
		}
		return "", &ServiceError{Reason: "no content in response"}
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func bodySnippet(body []byte) string {
	if len(body) <= bodySnippetLimit {
		return string(body)
	}
	return string(body[:bodySnippetLimit])
}
