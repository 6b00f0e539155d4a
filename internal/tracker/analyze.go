package tracker

import (
	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
)

// Thresholds for the difficulty state machine.
const (
	promoteAverage = 0.8
	demoteAverage  = 0.4

	analysisScoreWindow   = 5
	analysisEmotionWindow = 10
)

// analyzeAndAdjust moves the difficulty at most one tier based on the
// recent score average and the dominant recent emotion, and records the
// game type as a strength or struggling topic accordingly.
// Caller must hold t.mu.
func (t *Tracker) analyzeAndAdjust(p *PlayerPerformance, gameType quiz.GameType) {
	if len(p.RecentScores) < minScoresForAnalysis {
		return
	}

	recentAverage := mean(p.lastScores(analysisScoreWindow))
	dominant := DominantEmotion(p.lastEmotions(analysisEmotionWindow))

	switch {
	case recentAverage >= promoteAverage && dominant == emotion.Happy:
		p.CurrentDifficulty = p.CurrentDifficulty.Promote()
		p.Strengths = appendTag(p.Strengths, gameType)

	case recentAverage <= demoteAverage || dominant == emotion.Confused || dominant == emotion.Sad:
		p.CurrentDifficulty = p.CurrentDifficulty.Demote()
		p.StrugglingTopics = appendTag(p.StrugglingTopics, gameType)
	}
}

// appendTag adds a game type to a tag set, deduplicating and keeping
// only the maxTopicTags most recent unique entries.
func appendTag(tags []quiz.GameType, tag quiz.GameType) []quiz.GameType {
	for _, existing := range tags {
		if existing == tag {
			return tags
		}
	}
	tags = append(tags, tag)
	if len(tags) > maxTopicTags {
		tags = tags[len(tags)-maxTopicTags:]
	}
	return tags
}

// DominantEmotion returns the most frequent emotion in the window.
// Ties resolve to the earliest label in emotion.All, so the result is
// deterministic. An empty window reads as neutral.
func DominantEmotion(results []emotion.Result) emotion.Emotion {
	if len(results) == 0 {
		return emotion.Neutral
	}

	counts := make(map[emotion.Emotion]int, len(emotion.All))
	for _, r := range results {
		counts[r.Emotion]++
	}

	dominant := emotion.Neutral
	best := 0
	for _, e := range emotion.All {
		if counts[e] > best {
			dominant = e
			best = counts[e]
		}
	}
	return dominant
}
