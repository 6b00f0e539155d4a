package llm

import (
	"context"
	"fmt"

	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/worker"
)

// batchWorkers caps concurrent requests against the backend. Local
// models degrade quickly past a handful of parallel generations.
const batchWorkers = 3

type batchResult struct {
	question *quiz.Question
	err      error
}

// GenerateBatch requests count questions concurrently and returns the
// ones that succeeded. Partial success is normal; the error is non-nil
// only when every request failed, carrying the first failure.
func GenerateBatch(ctx context.Context, p Provider, req QuestionRequest, count int) ([]*quiz.Question, error) {
	if count <= 0 {
		return nil, nil
	}

	pool := worker.NewPool[batchResult](batchWorkers, count)
	defer pool.Close()

	for i := 0; i < count; i++ {
		pool.Submit(fmt.Sprintf("q%d", i), func() batchResult {
			q, err := p.GenerateQuestion(ctx, req)
			return batchResult{question: q, err: err}
		})
	}

	var questions []*quiz.Question
	var firstErr error
	for i := 0; i < count; i++ {
		res := <-pool.Results()
		if res.Output.err != nil {
			if firstErr == nil {
				firstErr = res.Output.err
			}
			continue
		}
		questions = append(questions, res.Output.question)
	}

	if len(questions) == 0 && firstErr != nil {
		return nil, fmt.Errorf("all %d generations failed: %w", count, firstErr)
	}
	return questions, nil
}
