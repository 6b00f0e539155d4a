// Package simulation drives the adaptive loop with a synthetic
// student, for demos and end-to-end sanity checks without a real
// frontend or camera.
package simulation

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/adaptive"
	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/tracker"
)

// Runner plays synthetic rounds against the real tracker and
// generator.
type Runner struct {
	tracker   *tracker.Tracker
	generator *adaptive.Generator
	sampler   *emotion.Sampler
	rng       *rand.Rand
	log       *zap.Logger

	// Skill is the probability the synthetic student answers a
	// question correctly, per difficulty tier.
	Skill map[quiz.Difficulty]float64
}

// New creates a Runner. A nil rng gets a fresh seeded source.
func New(tr *tracker.Tracker, gen *adaptive.Generator, rng *rand.Rand, log *zap.Logger) *Runner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		tracker:   tr,
		generator: gen,
		sampler:   emotion.NewSampler(rng, nil),
		rng:       rng,
		log:       log,
		Skill: map[quiz.Difficulty]float64{
			quiz.Easy:   0.9,
			quiz.Medium: 0.7,
			quiz.Hard:   0.45,
		},
	}
}

const questionsPerRound = 5

var playableTypes = []quiz.GameType{quiz.GameWordImage, quiz.GameNumber, quiz.GameColor}

// Run plays rounds complete game rounds for one synthetic student and
// returns the final insights.
func (r *Runner) Run(ctx context.Context, studentID string, age, rounds int) ([]string, error) {
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		gameType := playableTypes[r.rng.IntN(len(playableTypes))]
		mood := r.sampler.Sample()

		q, err := r.generator.GenerateQuestionWithContext(ctx, studentID, gameType, age, &mood)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}

		perf := r.tracker.GetPerformance(studentID)
		score := r.playRound(perf.CurrentDifficulty)
		responseTime := 2.0 + r.rng.Float64()*6.0

		r.tracker.RecordGameResult(studentID, score, questionsPerRound,
			responseTime, gameType, r.sampler.SampleN(3))

		r.log.Info("simulated round",
			zap.Int("round", i+1),
			zap.String("game_type", string(gameType)),
			zap.String("question_id", q.ID),
			zap.String("source", string(q.Source)),
			zap.Int("score", score),
			zap.String("difficulty", string(r.tracker.GetPerformance(studentID).CurrentDifficulty)))
	}

	return r.tracker.Insights(studentID), nil
}

// playRound rolls correct answers against the skill table.
func (r *Runner) playRound(difficulty quiz.Difficulty) int {
	p, ok := r.Skill[difficulty]
	if !ok {
		p = 0.5
	}
	score := 0
	for i := 0; i < questionsPerRound; i++ {
		if r.rng.Float64() < p {
			score++
		}
	}
	return score
}
