// Package llm adapts natural-language generation backends to the
// quiz-question wire contract. The primary backend is a local Ollama
// endpoint; OpenAI-compatible, Anthropic, and Gemini providers exist
// for deployments without a local model.
package llm

import (
	"context"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// Provider is the generation backend abstraction. Implementations send
// exactly one request per call and never retry: any retry or fallback
// policy belongs to the caller.
type Provider interface {
	// GenerateQuestion produces a single validated question. Any
	// parse or contract violation fails the call; a partially valid
	// question is never returned.
	GenerateQuestion(ctx context.Context, req QuestionRequest) (*quiz.Question, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// HealthChecker is implemented by providers that can be probed without
// generating content.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// QuestionRequest describes the question to generate.
type QuestionRequest struct {
	// Subject is the topic, in the content language (Turkish),
	// e.g. "hayvanlar", "renkler", "sayılar ve sayma".
	Subject string

	// Difficulty is the backend's three-level vocabulary.
	Difficulty Difficulty

	// QuestionType is the question format. Defaults to multiple
	// choice when empty; it is the only format the contract supports.
	QuestionType string
}

// DefaultQuestionType is the multiple-choice question format.
const DefaultQuestionType = "çoktan seçmeli"

func (r QuestionRequest) questionType() string {
	if r.QuestionType == "" {
		return DefaultQuestionType
	}
	return r.QuestionType
}
