package llm

import (
	"context"
	"sync"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Question *quiz.Question
	Err      error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []QuestionRequest
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// GenerateQuestion returns the next canned response or ErrBackendUnavailable
// if the queue is empty.
func (m *MockProvider) GenerateQuestion(_ context.Context, req QuestionRequest) (*quiz.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrBackendUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	// Copy so callers mutating the result can't corrupt later
	// canned responses sharing the same Question.
	q := *resp.Question
	q.Options = append([]string(nil), resp.Question.Options...)
	return &q, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of GenerateQuestion calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
