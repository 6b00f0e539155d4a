package adaptive

import (
	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/tracker"
)

// Classifier thresholds. These are deliberately different from the
// tracker's four-way classifier: this one reads the single current
// emotion rather than a window, and adds an energize band for students
// cruising below mastery.
const (
	strategyScoreWindow = 3

	challengeAverage = 0.8
	energizeAverage  = 0.6
	simplifyAverage  = 0.4

	// defaultAverage stands in when a student has no scores yet,
	// landing them in the encourage band.
	defaultAverage = 0.5
)

// DetermineStrategy classifies the student's situation for question
// generation. current may be nil when no emotion reading is available.
func DetermineStrategy(perf *tracker.PlayerPerformance, current *emotion.Result) quiz.Strategy {
	scores := perf.RecentScores
	if len(scores) > strategyScoreWindow {
		scores = scores[len(scores)-strategyScoreWindow:]
	}

	recentAverage := defaultAverage
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		recentAverage = sum / float64(len(scores))
	}

	var mood emotion.Emotion
	if current != nil {
		mood = current.Emotion
	}

	switch {
	case recentAverage >= challengeAverage && mood == emotion.Happy:
		return quiz.StrategyChallenge
	case recentAverage >= energizeAverage && recentAverage < challengeAverage:
		return quiz.StrategyEnergize
	case recentAverage <= simplifyAverage || mood == emotion.Sad:
		return quiz.StrategySimplify
	case mood == emotion.Confused:
		return quiz.StrategyRefocus
	}
	return quiz.StrategyEncourage
}
