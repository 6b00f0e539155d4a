// Package quiz defines the value types shared between the performance
// tracker, the question generators, and the HTTP surface.
package quiz

// GameType tags a question with the mini-game it belongs to.
type GameType string

const (
	GameWordImage       GameType = "word-image"
	GameNumber          GameType = "number"
	GameColor           GameType = "color"
	GameAttentionSprint GameType = "attention-sprint"
)

// Generatable reports whether the adaptive generator serves this game
// type. Attention sprints are produced by a separate subsystem.
func (g GameType) Generatable() bool {
	switch g {
	case GameWordImage, GameNumber, GameColor:
		return true
	}
	return false
}

// Valid reports whether g is any known game type.
func (g GameType) Valid() bool {
	return g.Generatable() || g == GameAttentionSprint
}

// AdaptedFor records which learner situation a question was tuned for.
type AdaptedFor string

const (
	AdaptedSuccess   AdaptedFor = "success"
	AdaptedStruggle  AdaptedFor = "struggle"
	AdaptedConfusion AdaptedFor = "confusion"
)

// Source identifies where a question came from.
type Source string

const (
	// SourceBackend marks questions produced by the generation backend.
	SourceBackend Source = "backend"

	// SourceFallback marks questions synthesized by the deterministic bank.
	SourceFallback Source = "fallback"
)

// Strategy is the generator-side adaptation label. It steers topic and
// tone selection and is deliberately a different vocabulary from the
// tracker's four-way classification.
type Strategy string

const (
	StrategyEncourage Strategy = "encourage"
	StrategyChallenge Strategy = "challenge"
	StrategySimplify  Strategy = "simplify"
	StrategyRefocus   Strategy = "refocus"
	StrategyEnergize  Strategy = "energize"
)

// AdaptedFor maps a strategy to the learner situation it targets.
func (s Strategy) AdaptedFor() AdaptedFor {
	switch s {
	case StrategyChallenge:
		return AdaptedSuccess
	case StrategySimplify:
		return AdaptedStruggle
	default:
		return AdaptedConfusion
	}
}

// Question is a single validated quiz item. Options always holds
// exactly four entries and CorrectIndex points into it.
type Question struct {
	ID           string     `json:"id"`
	Text         string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctAnswer"`
	Confidence   float64    `json:"confidence"` // in (0,1]
	GameType     GameType   `json:"gameType"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	AdaptedFor   AdaptedFor `json:"adaptedFor,omitempty"`
	Source       Source     `json:"source,omitempty"`
}
