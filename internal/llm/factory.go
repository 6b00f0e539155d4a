package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// event logging. There is no retry layer: every provider issues
// exactly one request per call, and the caller decides whether to fall
// back.
func NewProvider(ctx context.Context, cfg Config, recorder store.EventRecorder, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "ollama":
		base = NewOllamaProvider(cfg.Ollama)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, recorder, log), nil
}
