package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// GenOptions are the decoding options sent with every Ollama request.
type GenOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

// DefaultGenOptions balance JSON reliability against variety for the
// small Turkish models this runs against.
var DefaultGenOptions = GenOptions{
	Temperature: 0.6,
	TopP:        0.9,
	NumPredict:  300,
}

// OllamaProvider generates questions through a local Ollama endpoint.
// It sends exactly one synchronous request per call in JSON mode and
// never retries.
type OllamaProvider struct {
	baseURL string
	model   string
	options GenOptions
	policy  CharsetPolicy
	client  *http.Client
}

var _ Provider = (*OllamaProvider)(nil)
var _ HealthChecker = (*OllamaProvider)(nil)

// NewOllamaProvider creates a provider for the endpoint at baseURL,
// e.g. "http://localhost:11434".
func NewOllamaProvider(cfg OllamaConfig) *OllamaProvider {
	opts := cfg.Options
	if opts == (GenOptions{}) {
		opts = DefaultGenOptions
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &OllamaProvider{
		baseURL: cfg.URL,
		model:   cfg.Model,
		options: opts,
		policy:  TurkishContentPolicy,
		client:  &http.Client{Timeout: timeout},
	}
}

type ollamaGenerateRequest struct {
	Model   string     `json:"model"`
	Prompt  string     `json:"prompt"`
	Format  string     `json:"format"`
	Stream  bool       `json:"stream"`
	Options GenOptions `json:"options"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// GenerateQuestion implements Provider.
func (p *OllamaProvider) GenerateQuestion(ctx context.Context, req QuestionRequest) (*quiz.Question, error) {
	body := ollamaGenerateRequest{
		Model:   p.model,
		Prompt:  buildPrompt(req),
		Format:  "json",
		Stream:  false,
		Options: p.options,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &ErrBackendUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrBackendUnavailable{Err: fmt.Errorf("status %d %s", resp.StatusCode, resp.Status)}
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ErrInvalidContent{Err: fmt.Errorf("decode response envelope: %w", err)}
	}
	if out.Response == "" {
		return nil, &ErrInvalidContent{Err: fmt.Errorf("empty response field")}
	}

	wire, err := parseWireQuestion(out.Response, p.policy)
	if err != nil {
		return nil, err
	}

	return questionFromWire(wire, req), nil
}

// ModelID implements Provider.
func (p *OllamaProvider) ModelID() string { return p.model }

// Healthy probes the endpoint's tag listing. Used by readiness checks;
// never by the generation path.
func (p *OllamaProvider) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
