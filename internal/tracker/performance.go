package tracker

import (
	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
)

// Sliding-window and tag-set caps. These bound per-student memory and
// keep the difficulty analysis focused on recent behavior.
const (
	maxRecentScores   = 10
	maxRecentEmotions = 20
	maxTopicTags      = 5

	// minScoresForAnalysis gates both difficulty adjustment and
	// question adaptation: below this the signal is too thin.
	minScoresForAnalysis = 3
)

// PlayerPerformance is the per-student adaptive state. It is owned
// exclusively by the Tracker; callers only ever see copies.
type PlayerPerformance struct {
	// RecentScores holds per-game success rates in [0,1], oldest first,
	// capped at maxRecentScores.
	RecentScores []float64 `json:"recentScores"`

	// AverageResponseTime is updated as (old+new)/2 on every report.
	// Not a true mean: recent rounds dominate, which is intentional.
	AverageResponseTime float64 `json:"averageResponseTime"`

	// RecentEmotions holds observations oldest first, capped at
	// maxRecentEmotions.
	RecentEmotions []emotion.Result `json:"recentEmotions"`

	// StrugglingTopics and Strengths are deduplicated tag sets capped
	// at the maxTopicTags most recent unique entries.
	StrugglingTopics []quiz.GameType `json:"strugglingTopics"`
	Strengths        []quiz.GameType `json:"strengths"`

	CurrentDifficulty quiz.Difficulty `json:"currentDifficulty"`
}

// clone returns a deep copy so callers can't mutate tracker state.
func (p *PlayerPerformance) clone() *PlayerPerformance {
	return &PlayerPerformance{
		AverageResponseTime: p.AverageResponseTime,
		CurrentDifficulty:   p.CurrentDifficulty,
		RecentScores:        append([]float64(nil), p.RecentScores...),
		RecentEmotions:      append([]emotion.Result(nil), p.RecentEmotions...),
		StrugglingTopics:    append([]quiz.GameType(nil), p.StrugglingTopics...),
		Strengths:           append([]quiz.GameType(nil), p.Strengths...),
	}
}

// lastScores returns the up-to-n most recent scores.
func (p *PlayerPerformance) lastScores(n int) []float64 {
	if len(p.RecentScores) <= n {
		return p.RecentScores
	}
	return p.RecentScores[len(p.RecentScores)-n:]
}

// lastEmotions returns the up-to-n most recent emotion observations.
func (p *PlayerPerformance) lastEmotions(n int) []emotion.Result {
	if len(p.RecentEmotions) <= n {
		return p.RecentEmotions
	}
	return p.RecentEmotions[len(p.RecentEmotions)-n:]
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
