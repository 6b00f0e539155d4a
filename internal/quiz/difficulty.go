package quiz

// Difficulty is the coarse content-difficulty tier. Transitions only
// ever move to an adjacent tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ByAge derives the starting tier for a new student.
func ByAge(age int) Difficulty {
	switch {
	case age <= 5:
		return Easy
	case age <= 8:
		return Medium
	default:
		return Hard
	}
}

// Promote returns the next harder tier, staying at Hard.
func (d Difficulty) Promote() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return d
}

// Demote returns the next easier tier, staying at Easy.
func (d Difficulty) Demote() Difficulty {
	switch d {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return d
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}
