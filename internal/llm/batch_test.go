package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/odaklab/adaptiq/internal/quiz"
)

func cannedQuestion(id string) *quiz.Question {
	return &quiz.Question{
		ID:           id,
		Text:         "Hangi hayvan köpek?",
		Options:      []string{"🐶", "🐱", "🐸", "🦋"},
		CorrectIndex: 0,
		Confidence:   0.9,
		Source:       quiz.SourceBackend,
	}
}

func TestGenerateBatchPartialSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Question: cannedQuestion("q1")},
		MockResponse{Err: &ErrBackendUnavailable{}},
		MockResponse{Question: cannedQuestion("q2")},
	)

	questions, err := GenerateBatch(context.Background(), mock,
		QuestionRequest{Subject: "hayvanlar", Difficulty: Kolay}, 3)
	if err != nil {
		t.Fatalf("partial success must not error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("got %d questions, want 2", len(questions))
	}
	if mock.CallCount() != 3 {
		t.Errorf("provider called %d times, want 3", mock.CallCount())
	}
}

func TestGenerateBatchAllFailed(t *testing.T) {
	mock := NewMockProvider() // empty queue fails every call

	_, err := GenerateBatch(context.Background(), mock,
		QuestionRequest{Subject: "hayvanlar", Difficulty: Kolay}, 3)
	if err == nil {
		t.Fatal("expected error when every generation fails")
	}
	var unavailable *ErrBackendUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("got %T, want wrapped ErrBackendUnavailable", err)
	}
}

func TestGenerateBatchZeroCount(t *testing.T) {
	mock := NewMockProvider()
	questions, err := GenerateBatch(context.Background(), mock, QuestionRequest{}, 0)
	if err != nil || questions != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", questions, err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider must not be called for zero count")
	}
}

func TestDifficultyMappingRoundTrip(t *testing.T) {
	cases := []struct {
		tier quiz.Difficulty
		wire Difficulty
	}{
		{quiz.Easy, Kolay},
		{quiz.Medium, Orta},
		{quiz.Hard, Zor},
	}
	for _, tc := range cases {
		if got := DifficultyFor(tc.tier); got != tc.wire {
			t.Errorf("DifficultyFor(%q) = %q, want %q", tc.tier, got, tc.wire)
		}
		if got := tc.wire.Tier(); got != tc.tier {
			t.Errorf("%q.Tier() = %q, want %q", tc.wire, got, tc.tier)
		}
	}

	if got := Difficulty("bilinmeyen").Tier(); got != quiz.Medium {
		t.Errorf("unknown label maps to %q, want medium", got)
	}
}
