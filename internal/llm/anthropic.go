package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// AnthropicProvider implements Provider using the Anthropic SDK.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
	policy CharsetPolicy
}

var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &AnthropicProvider{
		client: &client,
		model:  cfg.Model,
		policy: TurkishContentPolicy,
	}, nil
}

// GenerateQuestion implements Provider.
func (p *AnthropicProvider) GenerateQuestion(ctx context.Context, req QuestionRequest) (*quiz.Question, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(DefaultGenOptions.NumPredict),
		Temperature: anthropic.Float(DefaultGenOptions.Temperature),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(buildPrompt(req)),
				},
			},
		},
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, &ErrBackendUnavailable{Err: err}
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, &ErrInvalidContent{Err: fmt.Errorf("no text content in Anthropic response")}
	}

	wire, err := parseWireQuestion(text, p.policy)
	if err != nil {
		return nil, err
	}

	return questionFromWire(wire, req), nil
}

// ModelID implements Provider.
func (p *AnthropicProvider) ModelID() string {
	return p.model
}
