package tracker

import "github.com/odaklab/adaptiq/internal/emotion"

// Strategy is the tracker-side four-way adaptation classification.
//
// The adaptive generator runs its own five-way classifier with
// different thresholds and emotion windows (see internal/adaptive).
// The two are kept separate on purpose: they evolved independently and
// their disagreement is observable behavior.
type Strategy string

const (
	StrategySuccess   Strategy = "success"
	StrategyStruggle  Strategy = "struggle"
	StrategyConfusion Strategy = "confusion"
	StrategyNeutral   Strategy = "neutral"
)

// Classifier windows and thresholds. Note these differ from the
// difficulty state machine's: a narrower score window and a shorter
// emotion window make this signal more reactive.
const (
	strategyScoreWindow   = 3
	strategyEmotionWindow = 6

	strategySuccessAverage  = 0.7
	strategyStruggleAverage = 0.4
)

// AdaptationStrategy classifies the student's current situation.
// Unknown students read as neutral.
func (t *Tracker) AdaptationStrategy(studentID string) Strategy {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[studentID]
	if !ok {
		return StrategyNeutral
	}
	return classifyStrategy(p)
}

func classifyStrategy(p *PlayerPerformance) Strategy {
	scores := p.lastScores(strategyScoreWindow)
	hasScores := len(scores) > 0
	recentAverage := mean(scores)
	dominant := DominantEmotion(p.lastEmotions(strategyEmotionWindow))

	switch {
	case hasScores && recentAverage >= strategySuccessAverage &&
		(dominant == emotion.Happy || dominant == emotion.Focused):
		return StrategySuccess
	case (hasScores && recentAverage <= strategyStruggleAverage) || dominant == emotion.Sad:
		return StrategyStruggle
	case dominant == emotion.Confused:
		return StrategyConfusion
	}
	return StrategyNeutral
}
