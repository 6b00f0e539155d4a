// Package tracker maintains per-student sliding-window performance
// state and runs the difficulty state machine over it.
package tracker

import (
	"sync"

	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
)

// Tracker owns the in-memory map of student id to PlayerPerformance.
// State lives for the process lifetime only; there is no persistence.
//
// All methods are safe for concurrent use. Window mutation is several
// field updates, so every mutating path holds the lock end to end.
type Tracker struct {
	mu      sync.Mutex
	players map[string]*PlayerPerformance
	log     *zap.Logger
}

// New creates an empty tracker. A nil logger disables logging.
func New(log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		players: make(map[string]*PlayerPerformance),
		log:     log,
	}
}

// InitializePlayer creates a record for studentID with the starting
// difficulty derived from age. Idempotent: if the student is already
// known this is a no-op and the original age-derived tier stands.
func (t *Tracker) InitializePlayer(studentID string, age int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players[studentID]; ok {
		return
	}
	t.players[studentID] = &PlayerPerformance{
		RecentScores:      []float64{},
		RecentEmotions:    []emotion.Result{},
		StrugglingTopics:  []quiz.GameType{},
		Strengths:         []quiz.GameType{},
		CurrentDifficulty: quiz.ByAge(age),
	}
	t.log.Debug("player initialized",
		zap.String("student", studentID),
		zap.Int("age", age),
		zap.String("difficulty", string(quiz.ByAge(age))))
}

// RecordGameResult folds one completed round into the student's state
// and re-runs the difficulty analysis. No-op for unknown students.
func (t *Tracker) RecordGameResult(studentID string, score, totalQuestions int, responseTimeSeconds float64, gameType quiz.GameType, emotions []emotion.Result) {
	if totalQuestions <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[studentID]
	if !ok {
		return
	}

	successRate := float64(score) / float64(totalQuestions)

	p.RecentScores = append(p.RecentScores, successRate)
	if len(p.RecentScores) > maxRecentScores {
		p.RecentScores = p.RecentScores[len(p.RecentScores)-maxRecentScores:]
	}

	p.AverageResponseTime = (p.AverageResponseTime + responseTimeSeconds) / 2

	p.RecentEmotions = append(p.RecentEmotions, emotions...)
	if len(p.RecentEmotions) > maxRecentEmotions {
		p.RecentEmotions = p.RecentEmotions[len(p.RecentEmotions)-maxRecentEmotions:]
	}

	before := p.CurrentDifficulty
	t.analyzeAndAdjust(p, gameType)

	if p.CurrentDifficulty != before {
		t.log.Info("difficulty adjusted",
			zap.String("student", studentID),
			zap.String("from", string(before)),
			zap.String("to", string(p.CurrentDifficulty)))
	}
}

// GetPerformance returns a snapshot of the student's state, or nil if
// the student has never been initialized.
func (t *Tracker) GetPerformance(studentID string) *PlayerPerformance {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[studentID]
	if !ok {
		return nil
	}
	return p.clone()
}

// ShouldAdaptQuestion reports whether enough rounds have been recorded
// for adaptation to be meaningful.
func (t *Tracker) ShouldAdaptQuestion(studentID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[studentID]
	return ok && len(p.RecentScores) >= minScoresForAnalysis
}

// ResetPerformance deletes the student's record entirely.
func (t *Tracker) ResetPerformance(studentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.players, studentID)
}

// ExportPerformanceData returns a read-only snapshot for dashboards,
// or nil if the student is unknown.
func (t *Tracker) ExportPerformanceData(studentID string) *PlayerPerformance {
	return t.GetPerformance(studentID)
}
