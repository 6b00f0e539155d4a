// Package questionbank synthesizes quiz questions from small fixed
// topic tables. It is the deterministic fallback tier behind the
// generation backend: it never performs I/O and never fails for a
// game type it serves.
package questionbank

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// Bank generates fallback questions. The random source is injectable
// so tests can fix the sequence.
type Bank struct {
	rng *rand.Rand
}

// New creates a Bank. A nil rng gets a fresh seeded source.
func New(rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bank{rng: rng}
}

// Generate synthesizes a question for the given game type, strategy
// and difficulty tier.
func (b *Bank) Generate(gameType quiz.GameType, strategy quiz.Strategy, difficulty quiz.Difficulty) (*quiz.Question, error) {
	switch gameType {
	case quiz.GameWordImage:
		return b.wordImage(strategy, difficulty), nil
	case quiz.GameNumber:
		return b.number(strategy, difficulty), nil
	case quiz.GameColor:
		return b.color(strategy, difficulty), nil
	default:
		return nil, fmt.Errorf("question bank does not serve game type %q", gameType)
	}
}

type tableEntry struct {
	question string
	options  [4]string
	correct  int
}

// Animal recognition items, two per tier. Option glyphs chosen to be
// visually distinct at a glance.
var wordImageTable = map[quiz.Difficulty][]tableEntry{
	quiz.Easy: {
		{question: "Hangi hayvan köpek?", options: [4]string{"🐶", "🐱", "🐸", "🦋"}, correct: 0},
		{question: "Hangi hayvan kedi?", options: [4]string{"🐱", "🐶", "🐸", "🦋"}, correct: 0},
	},
	quiz.Medium: {
		{question: "Hangi hayvan çiftlikte yaşar?", options: [4]string{"🐄", "🐧", "🦁", "🐙"}, correct: 0},
		{question: "Hangi hayvan denizde yaşar?", options: [4]string{"🐠", "🐶", "🐱", "🐸"}, correct: 0},
	},
	quiz.Hard: {
		{question: "Hangi hayvan gece aktiftir?", options: [4]string{"🦉", "🐶", "🐸", "🦋"}, correct: 0},
		{question: "Hangi hayvan soğuk bölgelerde yaşar?", options: [4]string{"🐧", "🦁", "🐴", "🐄"}, correct: 0},
	},
}

func (b *Bank) wordImage(strategy quiz.Strategy, difficulty quiz.Difficulty) *quiz.Question {
	entries, ok := wordImageTable[difficulty]
	if !ok {
		entries = wordImageTable[quiz.Medium]
	}
	entry := entries[b.rng.IntN(len(entries))]

	text := entry.question
	switch strategy {
	case quiz.StrategyEncourage:
		text = "Harika! " + text
	case quiz.StrategySimplify:
		text = "Kolay soru: " + text
	case quiz.StrategyChallenge:
		text = "Zor soru: " + text
	}

	return &quiz.Question{
		ID:           newID(quiz.GameWordImage),
		Text:         text,
		Options:      entry.options[:],
		CorrectIndex: entry.correct,
		Confidence:   0.85,
		GameType:     quiz.GameWordImage,
		Difficulty:   difficulty,
		AdaptedFor:   strategy.AdaptedFor(),
		Source:       quiz.SourceFallback,
	}
}

// Counting ranges per tier.
var numberRanges = map[quiz.Difficulty]struct{ min, max int }{
	quiz.Easy:   {1, 5},
	quiz.Medium: {1, 10},
	quiz.Hard:   {5, 15},
}

func (b *Bank) number(strategy quiz.Strategy, difficulty quiz.Difficulty) *quiz.Question {
	r, ok := numberRanges[difficulty]
	if !ok {
		r = numberRanges[quiz.Medium]
	}
	target := r.min + b.rng.IntN(r.max-r.min+1)

	wrongs := make([]int, 0, 3)
	seen := map[int]bool{target: true}
	for len(wrongs) < 3 {
		var wrong int
		if strategy == quiz.StrategySimplify {
			// Distractors land further from the target so the
			// right answer stands out.
			if b.rng.IntN(2) == 0 {
				wrong = max(1, target-b.rng.IntN(3)-1)
			} else {
				wrong = min(r.max, target+b.rng.IntN(3)+1)
			}
		} else {
			wrong = r.min + b.rng.IntN(r.max-r.min+1)
		}
		if !seen[wrong] {
			seen[wrong] = true
			wrongs = append(wrongs, wrong)
		}
	}

	values := append([]int{target}, wrongs...)
	b.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	options := make([]string, len(values))
	correct := 0
	for i, v := range values {
		options[i] = fmt.Sprintf("%d", v)
		if v == target {
			correct = i
		}
	}

	text := "Kaç tane 🐶 var?"
	switch strategy {
	case quiz.StrategyEncourage:
		text = "Harika! " + text
	case quiz.StrategyChallenge:
		text = "Dikkatlice say: " + text
	case quiz.StrategySimplify:
		text = "Kolay soru: " + text
	}

	return &quiz.Question{
		ID:           newID(quiz.GameNumber),
		Text:         text,
		Options:      options,
		CorrectIndex: correct,
		Confidence:   0.9,
		GameType:     quiz.GameNumber,
		Difficulty:   difficulty,
		AdaptedFor:   strategy.AdaptedFor(),
		Source:       quiz.SourceFallback,
	}
}

type paletteColor struct {
	name  string
	emoji string
}

var colorPalette = []paletteColor{
	{"kırmızı", "🔴"},
	{"mavi", "🔵"},
	{"yeşil", "🟢"},
	{"sarı", "🟡"},
	{"mor", "🟣"},
	{"turuncu", "🟠"},
}

// minPalette keeps every color question at four unique options.
const minPalette = 4

func (b *Bank) color(strategy quiz.Strategy, difficulty quiz.Difficulty) *quiz.Question {
	palette := colorPalette
	if difficulty == quiz.Easy || strategy == quiz.StrategySimplify {
		palette = colorPalette[:minPalette]
	}

	target := palette[b.rng.IntN(len(palette))]

	wrongs := make([]paletteColor, 0, 3)
	for _, c := range palette {
		if c.name != target.name && len(wrongs) < 3 {
			wrongs = append(wrongs, c)
		}
	}

	chosen := append([]paletteColor{target}, wrongs...)
	b.rng.Shuffle(len(chosen), func(i, j int) {
		chosen[i], chosen[j] = chosen[j], chosen[i]
	})

	options := make([]string, len(chosen))
	correct := 0
	for i, c := range chosen {
		options[i] = c.emoji
		if c.name == target.name {
			correct = i
		}
	}

	text := fmt.Sprintf("Hangi renk %s?", target.name)
	switch strategy {
	case quiz.StrategyEncourage:
		text = "Çok güzel! " + text
	case quiz.StrategyChallenge:
		text = "Dikkat et: " + text
	case quiz.StrategySimplify:
		text = "Basit soru: " + text
	}

	return &quiz.Question{
		ID:           newID(quiz.GameColor),
		Text:         text,
		Options:      options,
		CorrectIndex: correct,
		Confidence:   0.9,
		GameType:     quiz.GameColor,
		Difficulty:   difficulty,
		AdaptedFor:   strategy.AdaptedFor(),
		Source:       quiz.SourceFallback,
	}
}

// Static returns a fixed known-good question, the last resort when
// everything else is unavailable.
func Static() *quiz.Question {
	return &quiz.Question{
		ID:           newID(quiz.GameWordImage),
		Text:         "Hangi hayvan köpek?",
		Options:      []string{"🐶", "🐱", "🐸", "🦋"},
		CorrectIndex: 0,
		Confidence:   0.85,
		GameType:     quiz.GameWordImage,
		Difficulty:   quiz.Easy,
		Source:       quiz.SourceFallback,
	}
}

func newID(gameType quiz.GameType) string {
	return fmt.Sprintf("fallback_%s_%s", gameType, uuid.NewString())
}
