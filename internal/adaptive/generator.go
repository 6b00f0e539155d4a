// Package adaptive orchestrates question generation: it classifies the
// student's situation from tracker state, picks a topic, calls the
// generation backend, and falls back to the deterministic bank when
// the backend fails.
package adaptive

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/questionbank"
	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/tracker"
)

// Generator produces adaptive questions for one service instance.
type Generator struct {
	tracker  *tracker.Tracker
	provider llm.Provider
	bank     *questionbank.Bank
	log      *zap.Logger
	rng      *rand.Rand
	guard    *inflightGuard
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithRand sets the random source used for topic selection, so tests
// can fix the sequence.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator wires a Generator from its collaborators.
func NewGenerator(tr *tracker.Tracker, provider llm.Provider, bank *questionbank.Bank, opts ...Option) *Generator {
	g := &Generator{
		tracker:  tr,
		provider: provider,
		bank:     bank,
		guard:    newInflightGuard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// GenerateQuestionWithContext produces one question for the student.
// The student is initialized on first sight; currentEmotion may be nil.
//
// Attention sprints are served by a separate subsystem and fail fast
// here without contacting the backend. A duplicate request for a
// (student, game type) slot with one outstanding returns
// ErrGenerationInFlight.
func (g *Generator) GenerateQuestionWithContext(ctx context.Context, studentID string, gameType quiz.GameType, age int, currentEmotion *emotion.Result) (*quiz.Question, error) {
	if !gameType.Generatable() {
		return nil, &ErrUnsupportedGameType{GameType: gameType}
	}

	g.tracker.InitializePlayer(studentID, age)
	perf := g.tracker.GetPerformance(studentID)
	if perf == nil {
		return nil, ErrNotInitialized
	}

	if !g.guard.tryAcquire(studentID, gameType) {
		return nil, ErrGenerationInFlight
	}
	defer g.guard.release(studentID, gameType)

	strategy := DetermineStrategy(perf, currentEmotion)

	req := llm.QuestionRequest{
		Subject:    g.subjectFor(gameType, age, strategy),
		Difficulty: llm.DifficultyFor(perf.CurrentDifficulty),
	}
	ctx = llm.WithScope(ctx, llm.Scope{
		StudentID: studentID,
		GameType:  string(gameType),
		Strategy:  string(strategy),
	})

	q, err := g.provider.GenerateQuestion(ctx, req)
	if err == nil {
		g.stamp(q, gameType, strategy, perf.CurrentDifficulty)
		return q, nil
	}

	g.log.Warn("backend generation failed, using fallback bank",
		zap.String("student_id", studentID),
		zap.String("game_type", string(gameType)),
		zap.String("strategy", string(strategy)),
		zap.Error(err))

	fb, bankErr := g.bank.Generate(gameType, strategy, perf.CurrentDifficulty)
	if bankErr != nil {
		// Terminal tier: a fixed known-good question beats an error
		// screen mid-game.
		g.log.Error("fallback bank failed, serving static question",
			zap.String("game_type", string(gameType)),
			zap.Error(bankErr))
		fb = questionbank.Static()
		g.stamp(fb, gameType, strategy, perf.CurrentDifficulty)
		fb.Source = quiz.SourceFallback
	}
	return fb, nil
}

// stamp applies adaptation metadata to a backend-generated question.
func (g *Generator) stamp(q *quiz.Question, gameType quiz.GameType, strategy quiz.Strategy, difficulty quiz.Difficulty) {
	q.GameType = gameType
	q.Difficulty = difficulty
	q.AdaptedFor = strategy.AdaptedFor()
}

// Age bands for topic selection.
const (
	maxPreschoolAge    = 5
	maxEarlyPrimaryAge = 8
)

var wordImageTopics = map[int][]string{
	0: {"hayvanlar", "meyveler"},
	1: {"hayvanlar", "meyveler", "taşıtlar"},
	2: {"hayvanlar", "taşıtlar", "doğa"},
}

func ageBand(age int) int {
	switch {
	case age <= maxPreschoolAge:
		return 0
	case age <= maxEarlyPrimaryAge:
		return 1
	default:
		return 2
	}
}

// subjectFor picks the generation topic. Strategy overrides the age
// pool: simplify forces the easiest topic, energize forces high
// stimulation, refocus forces a calm one. The number and color
// builders have a single domain each, so strategy modulates the
// subject phrasing instead of swapping the topic.
func (g *Generator) subjectFor(gameType quiz.GameType, age int, strategy quiz.Strategy) string {
	switch gameType {
	case quiz.GameNumber:
		switch strategy {
		case quiz.StrategySimplify:
			return "1-5 arası sayma"
		case quiz.StrategyEnergize:
			return "eğlenceli sayı oyunları"
		case quiz.StrategyRefocus:
			return "sakin sayı sayma"
		}
		return "sayılar ve sayma"
	case quiz.GameColor:
		switch strategy {
		case quiz.StrategySimplify:
			return "ana renkler"
		case quiz.StrategyEnergize:
			return "canlı renkler"
		case quiz.StrategyRefocus:
			return "sakin renkler"
		}
		return "renkler"
	}

	switch strategy {
	case quiz.StrategySimplify:
		return "hayvanlar"
	case quiz.StrategyEnergize:
		return "taşıtlar"
	case quiz.StrategyRefocus:
		return "meyveler"
	}

	pool := wordImageTopics[ageBand(age)]
	return pool[g.rng.IntN(len(pool))]
}
