package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// GeminiProvider implements Provider using the Google Gemini SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
	policy CharsetPolicy
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.Model,
		policy: TurkishContentPolicy,
	}, nil
}

// GenerateQuestion implements Provider.
func (p *GeminiProvider) GenerateQuestion(ctx context.Context, req QuestionRequest) (*quiz.Question, error) {
	temp := float32(DefaultGenOptions.Temperature)
	config := &genai.GenerateContentConfig{
		MaxOutputTokens:  int32(DefaultGenOptions.NumPredict),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: buildPrompt(req)}}},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, &ErrBackendUnavailable{Err: err}
	}

	text := result.Text()
	if text == "" {
		return nil, &ErrInvalidContent{Err: fmt.Errorf("empty Gemini response")}
	}

	wire, err := parseWireQuestion(text, p.policy)
	if err != nil {
		return nil, err
	}

	return questionFromWire(wire, req), nil
}

// ModelID implements Provider.
func (p *GeminiProvider) ModelID() string {
	return p.model
}
