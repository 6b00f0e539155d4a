package tracker

import (
	"testing"

	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
)

func recordRounds(tr *Tracker, studentID string, score int, e emotion.Emotion, n int) {
	for i := 0; i < n; i++ {
		tr.RecordGameResult(studentID, score, 5, 4.0, quiz.GameNumber,
			[]emotion.Result{obs(e)})
	}
}

func TestAdaptationStrategyUnknownStudent(t *testing.T) {
	tr := New(nil)
	if got := tr.AdaptationStrategy("ghost"); got != StrategyNeutral {
		t.Errorf("got %q, want neutral", got)
	}
}

func TestAdaptationStrategySuccess(t *testing.T) {
	tr := New(nil)
	tr.InitializePlayer("s1", 7)
	recordRounds(tr, "s1", 4, emotion.Focused, 3) // avg 0.8, dominant focused

	if got := tr.AdaptationStrategy("s1"); got != StrategySuccess {
		t.Errorf("got %q, want success", got)
	}
}

func TestAdaptationStrategyStruggle(t *testing.T) {
	tr := New(nil)
	tr.InitializePlayer("low", 7)
	recordRounds(tr, "low", 1, emotion.Neutral, 3) // avg 0.2

	if got := tr.AdaptationStrategy("low"); got != StrategyStruggle {
		t.Errorf("low average: got %q, want struggle", got)
	}

	// A sad student struggles regardless of scores.
	tr.InitializePlayer("sad", 7)
	recordRounds(tr, "sad", 3, emotion.Sad, 2) // avg 0.6, dominant sad

	if got := tr.AdaptationStrategy("sad"); got != StrategyStruggle {
		t.Errorf("sad dominant: got %q, want struggle", got)
	}
}

func TestAdaptationStrategyConfusion(t *testing.T) {
	tr := New(nil)
	tr.InitializePlayer("s1", 7)
	recordRounds(tr, "s1", 3, emotion.Confused, 2) // avg 0.6, dominant confused

	if got := tr.AdaptationStrategy("s1"); got != StrategyConfusion {
		t.Errorf("got %q, want confusion", got)
	}
}

func TestAdaptationStrategyNeutralDefault(t *testing.T) {
	tr := New(nil)
	tr.InitializePlayer("s1", 7)
	recordRounds(tr, "s1", 3, emotion.Neutral, 3) // avg 0.6, dominant neutral

	if got := tr.AdaptationStrategy("s1"); got != StrategyNeutral {
		t.Errorf("got %q, want neutral", got)
	}

	// No scores yet: neither score branch can fire.
	tr.InitializePlayer("fresh", 7)
	if got := tr.AdaptationStrategy("fresh"); got != StrategyNeutral {
		t.Errorf("fresh student: got %q, want neutral", got)
	}
}
