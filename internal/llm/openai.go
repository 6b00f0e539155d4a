package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// OpenAIProvider implements Provider using the OpenAI SDK.
// It also supports OpenRouter and other OpenAI-compatible APIs via
// BaseURL. The response passes through the same wire-contract pipeline
// as the Ollama provider.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	policy CharsetPolicy
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		policy: TurkishContentPolicy,
	}, nil
}

// GenerateQuestion implements Provider.
func (p *OpenAIProvider) GenerateQuestion(ctx context.Context, req QuestionRequest) (*quiz.Question, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		MaxCompletionTokens: DefaultGenOptions.NumPredict,
		Temperature:         float32(DefaultGenOptions.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidContent{Err: fmt.Errorf("no choices in OpenAI response")}
	}

	wire, err := parseWireQuestion(resp.Choices[0].Message.Content, p.policy)
	if err != nil {
		return nil, err
	}

	return questionFromWire(wire, req), nil
}

// ModelID implements Provider.
func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ErrBackendUnavailable{Err: fmt.Errorf("rate limited: %w", err)}
	}
	return &ErrBackendUnavailable{Err: err}
}
