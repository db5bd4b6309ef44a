package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultModel is the Gemini model used for rewrites unless overridden
const DefaultModel = "gemini-2.5-pro"

// GeminiOracle implements Oracle on Google Gemini. Calls run through a
// circuit breaker and a bounded retry loop; the raw response is hardened
// before it is returned.
type GeminiOracle struct {
	client       *genai.Client
	model        string
	breaker      *gobreaker.CircuitBreaker[string]
	maxAttempts  int
	initialDelay time.Duration
}

// NewGemini creates a Gemini-backed oracle. An empty model uses
// DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiOracle{
		client:       client,
		model:        model,
		breaker:      newBreaker(),
		maxAttempts:  defaultMaxAttempts,
		initialDelay: defaultInitialDelay,
	}, nil
}

// Rewrite asks Gemini for a rewritten resume and hardens the response
// against the original document
func (o *GeminiOracle) Rewrite(ctx context.Context, req Request) (*types.ResumeDocument, error) {
	prompt, err := buildRewritePrompt(req)
	if err != nil {
		return nil, err
	}

	raw, err := withRetry(ctx, o.maxAttempts, o.initialDelay, func() (string, error) {
		return o.breaker.Execute(func() (string, error) {
			return o.generate(ctx, prompt)
		})
	})
	if err != nil {
		return nil, &UnavailableError{Cause: err}
	}

	return ParseRewriteOutput(raw, req.Resume)
}

// generate performs one Gemini call and extracts the text response
func (o *GeminiOracle) generate(ctx context.Context, prompt string) (string, error) {
	model := o.client.GenerativeModel(o.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompts.MustGet("rewrite.json", "rewrite-system"))},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (o *GeminiOracle) Close() error {
	if o.client != nil {
		return o.client.Close()
	}
	return nil
}

// extractTextFromResponse pulls the text parts out of a Gemini response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
