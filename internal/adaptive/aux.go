package adaptive

import (
	"context"

	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/quiz"
)

// Topic pools for the auxiliary subject helpers. Concrete, single-step
// topics suit short attention spans.
var (
	mathTopics = []string{
		"toplama",
		"çıkarma",
		"sayı sayma",
		"şekiller",
		"örüntüler",
	}
	scienceTopics = []string{
		"hayvanlar",
		"bitkiler",
		"hava durumu",
		"vücudumuz",
		"uzay",
	}
)

// GenerateMathQuestion requests a math question at the given tier.
// Unlike the game-type path there is no deterministic fallback:
// backend failures propagate to the caller.
func (g *Generator) GenerateMathQuestion(ctx context.Context, difficulty quiz.Difficulty) (*quiz.Question, error) {
	return g.auxQuestion(ctx, mathTopics, difficulty)
}

// GenerateScienceQuestion requests a science question at the given
// tier. Backend failures propagate to the caller.
func (g *Generator) GenerateScienceQuestion(ctx context.Context, difficulty quiz.Difficulty) (*quiz.Question, error) {
	return g.auxQuestion(ctx, scienceTopics, difficulty)
}

func (g *Generator) auxQuestion(ctx context.Context, topics []string, difficulty quiz.Difficulty) (*quiz.Question, error) {
	req := llm.QuestionRequest{
		Subject:    topics[g.rng.IntN(len(topics))],
		Difficulty: llm.DifficultyFor(difficulty),
	}

	q, err := g.provider.GenerateQuestion(ctx, req)
	if err != nil {
		return nil, err
	}
	q.Difficulty = difficulty
	return q, nil
}
