package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// wireQuestion is the payload every backend must produce, directly or
// embedded in prose.
type wireQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// wireContract is the JSON Schema for wireQuestion. Shape-level checks
// (types, required fields) run here; the ordered semantic checks in
// validateWire run after.
var wireContract = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"correctIndex": map[string]any{"type": "integer"},
	},
	"required": []any{"question", "options", "correctIndex"},
}

var (
	compiledContract     *jsonschema.Schema
	compileContractOnce  sync.Once
	compileContractError error
)

func contractSchema() (*jsonschema.Schema, error) {
	compileContractOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question.json", wireContract); err != nil {
			compileContractError = fmt.Errorf("add contract resource: %w", err)
			return
		}
		compiledContract, compileContractError = c.Compile("schema://question.json")
	})
	return compiledContract, compileContractError
}

// parseWireQuestion decodes raw backend text into a wireQuestion and
// enforces the full contract. Direct JSON parse is attempted first;
// on failure the first brace-delimited object is extracted and parsed.
func parseWireQuestion(raw string, policy CharsetPolicy) (*wireQuestion, error) {
	text := strings.TrimSpace(raw)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		embedded := extractJSON(text)
		if embedded == "" {
			return nil, &ErrInvalidContent{Raw: raw, Err: fmt.Errorf("no JSON object in response")}
		}
		if err := json.Unmarshal([]byte(embedded), &parsed); err != nil {
			return nil, &ErrInvalidContent{Raw: raw, Err: fmt.Errorf("embedded JSON: %w", err)}
		}
		text = embedded
	}

	schema, err := contractSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidContent{Raw: raw, Err: fmt.Errorf("contract violation: %w", err)}
	}

	var q wireQuestion
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		return nil, &ErrInvalidContent{Raw: raw, Err: err}
	}

	if err := validateWire(&q, raw, policy); err != nil {
		return nil, err
	}
	return &q, nil
}

// questionFromWire builds the domain question for a validated wire
// payload.
func questionFromWire(q *wireQuestion, req QuestionRequest) *quiz.Question {
	return &quiz.Question{
		ID:           fmt.Sprintf("gen_%s", uuid.NewString()),
		Text:         q.Question,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
		Confidence:   0.9,
		Difficulty:   req.Difficulty.Tier(),
		Source:       quiz.SourceBackend,
	}
}

// validateWire runs the ordered semantic checks. Fails fast on the
// first violation.
func validateWire(q *wireQuestion, raw string, policy CharsetPolicy) error {
	if strings.TrimSpace(q.Question) == "" {
		return &ErrInvalidContent{Raw: raw, Err: fmt.Errorf("question is empty")}
	}
	if r, bad := policy.Violation(q.Question); bad {
		return &ErrContentPolicy{Raw: raw, Offending: r, Field: "question"}
	}
	if len(q.Options) != 4 {
		return &ErrInvalidContent{Raw: raw, Err: fmt.Errorf("expected 4 options, got %d", len(q.Options))}
	}
	for i, opt := range q.Options {
		if r, bad := policy.Violation(opt); bad {
			return &ErrContentPolicy{Raw: raw, Offending: r, Field: fmt.Sprintf("options[%d]", i)}
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
		return &ErrInvalidContent{Raw: raw, Err: fmt.Errorf("correctIndex %d out of range", q.CorrectIndex)}
	}
	return nil
}
