package tracker

import (
	"fmt"
	"strings"

	"github.com/odaklab/adaptiq/internal/emotion"
)

// Insight text is Turkish because the parent/teacher dashboard is
// Turkish. Hint order is fixed: overall performance, struggling
// topics, strengths, emotion.

// Insights derives rule-based coaching hints from the student's state.
// Returns nil only for unknown students; a known student whose state
// triggers no rule gets an empty, non-nil slice.
func (t *Tracker) Insights(studentID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[studentID]
	if !ok {
		return nil
	}

	insights := []string{}

	overall := mean(p.RecentScores)
	if overall >= promoteAverage {
		insights = append(insights, "Öğrenci çok başarılı, daha zor sorularla meydan okuyun")
	} else if overall <= demoteAverage {
		insights = append(insights, "Öğrenci zorlanıyor, daha basit sorularla motivasyonu artırın")
	}

	if len(p.StrugglingTopics) > 0 {
		insights = append(insights, fmt.Sprintf("Zorlandığı konular: %s", joinTags(p.StrugglingTopics)))
	}
	if len(p.Strengths) > 0 {
		insights = append(insights, fmt.Sprintf("Güçlü olduğu konular: %s", joinTags(p.Strengths)))
	}

	switch DominantEmotion(p.RecentEmotions) {
	case emotion.Confused:
		insights = append(insights, "Öğrenci karışık görünüyor, açıklamaları basitleştirin")
	case emotion.Happy:
		insights = append(insights, "Öğrenci mutlu ve motive, bu tempoyu koruyun")
	}

	return insights
}

func joinTags[T ~string](tags []T) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
