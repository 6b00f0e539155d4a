package llm

import "github.com/odaklab/adaptiq/internal/quiz"

// Difficulty is the backend's own three-level vocabulary. The model
// was tuned on Turkish difficulty labels, so the wire level never sees
// the internal tier names.
type Difficulty string

const (
	Kolay Difficulty = "kolay"
	Orta  Difficulty = "orta"
	Zor   Difficulty = "zor"
)

// DifficultyFor maps an internal tier to the wire vocabulary.
func DifficultyFor(tier quiz.Difficulty) Difficulty {
	switch tier {
	case quiz.Easy:
		return Kolay
	case quiz.Hard:
		return Zor
	default:
		return Orta
	}
}

// Tier maps the wire vocabulary back to the internal tier. Unknown
// labels read as medium.
func (d Difficulty) Tier() quiz.Difficulty {
	switch d {
	case Kolay:
		return quiz.Easy
	case Zor:
		return quiz.Hard
	default:
		return quiz.Medium
	}
}
