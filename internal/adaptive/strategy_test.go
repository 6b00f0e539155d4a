package adaptive

import (
	"testing"
	"time"

	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/tracker"
)

func perfWithScores(scores ...float64) *tracker.PlayerPerformance {
	return &tracker.PlayerPerformance{RecentScores: scores}
}

func reading(e emotion.Emotion) *emotion.Result {
	return &emotion.Result{Emotion: e, Confidence: 0.9, Timestamp: time.Now()}
}

func TestDetermineStrategy(t *testing.T) {
	cases := []struct {
		name    string
		perf    *tracker.PlayerPerformance
		current *emotion.Result
		want    quiz.Strategy
	}{
		{"high average and happy", perfWithScores(0.8, 0.9, 1.0), reading(emotion.Happy), quiz.StrategyChallenge},
		{"high average but not happy", perfWithScores(0.9, 0.9, 0.9), reading(emotion.Neutral), quiz.StrategyEncourage},
		{"cruising band", perfWithScores(0.6, 0.7, 0.7), nil, quiz.StrategyEnergize},
		{"cruising band even when happy", perfWithScores(0.7, 0.7, 0.7), reading(emotion.Happy), quiz.StrategyEnergize},
		{"low average", perfWithScores(0.2, 0.3, 0.3), nil, quiz.StrategySimplify},
		{"sad overrides decent scores", perfWithScores(0.5, 0.5, 0.5), reading(emotion.Sad), quiz.StrategySimplify},
		{"confused", perfWithScores(0.5, 0.5, 0.5), reading(emotion.Confused), quiz.StrategyRefocus},
		{"default encourage", perfWithScores(0.5, 0.5, 0.5), reading(emotion.Neutral), quiz.StrategyEncourage},
		{"no scores defaults to encourage", perfWithScores(), nil, quiz.StrategyEncourage},
		{"only last three scores count", perfWithScores(0.0, 0.0, 0.9, 0.9, 0.9), reading(emotion.Happy), quiz.StrategyChallenge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineStrategy(tc.perf, tc.current); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// The tracker's four-way classifier and the generator's five-way one
// use different thresholds and emotion windows. For the same snapshot
// they can legitimately disagree; that disagreement is load-bearing
// behavior, not a bug to unify away.
func TestClassifiersCanDisagreeOnSameSnapshot(t *testing.T) {
	tr := tracker.New(nil)
	tr.InitializePlayer("s1", 7)
	for i := 0; i < 3; i++ {
		tr.RecordGameResult("s1", 15, 20, 4.0, quiz.GameNumber, // 0.75 per round
			[]emotion.Result{{Emotion: emotion.Happy, Confidence: 0.9, Timestamp: time.Now()}})
	}

	trackerSays := tr.AdaptationStrategy("s1")
	generatorSays := DetermineStrategy(tr.GetPerformance("s1"), reading(emotion.Happy))

	// avg 0.75 with happy: success for the tracker (>= 0.7), but the
	// generator's challenge bar is 0.8, so it lands in energize.
	if trackerSays != tracker.StrategySuccess {
		t.Errorf("tracker = %q, want success", trackerSays)
	}
	if generatorSays != quiz.StrategyEnergize {
		t.Errorf("generator = %q, want energize", generatorSays)
	}
}
