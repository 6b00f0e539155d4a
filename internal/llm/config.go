package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and configures the generation backend.
type Config struct {
	// Provider selects the backend implementation.
	// Values: "ollama", "openai", "anthropic", "gemini", "mock".
	Provider string

	Ollama    OllamaConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
}

// OllamaConfig holds local endpoint configuration.
type OllamaConfig struct {
	URL     string // e.g. "http://localhost:11434"
	Model   string
	Options GenOptions
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI (or compatible) configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional override for compatible endpoints
}

// AnthropicConfig holds Anthropic configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig holds Gemini configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// DefaultConfig returns the local-first defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "ollama",
		Ollama: OllamaConfig{
			URL:     "http://localhost:11434",
			Model:   "hf.co/umutkkgz/Kaira-Turkish-Gemma-9B-T1-GGUF:Q3_K_M",
			Options: DefaultGenOptions,
			Timeout: 60 * time.Second,
		},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic: AnthropicConfig{Model: "claude-haiku-4-5-20251001"},
		Gemini:    GeminiConfig{Model: "gemini-2.0-flash"},
	}
}

// ConfigFromEnv builds a Config from ADAPTIQ_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("ADAPTIQ_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if u := os.Getenv("ADAPTIQ_OLLAMA_URL"); u != "" {
		cfg.Ollama.URL = u
	}
	if m := os.Getenv("ADAPTIQ_OLLAMA_MODEL"); m != "" {
		cfg.Ollama.Model = m
	}
	if t := os.Getenv("ADAPTIQ_OLLAMA_TEMPERATURE"); t != "" {
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			cfg.Ollama.Options.Temperature = f
		}
	}
	if k := os.Getenv("ADAPTIQ_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("ADAPTIQ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("ADAPTIQ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("ADAPTIQ_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("ADAPTIQ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if k := os.Getenv("ADAPTIQ_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("ADAPTIQ_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// Validate checks that the selected provider is usable.
func (c Config) Validate() error {
	switch c.Provider {
	case "ollama":
		if c.Ollama.URL == "" {
			return fmt.Errorf("ADAPTIQ_OLLAMA_URL is required for the ollama provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ADAPTIQ_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ADAPTIQ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("ADAPTIQ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No configuration needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
