package adaptive

import (
	"sync"

	"github.com/odaklab/adaptiq/internal/quiz"
)

type slot struct {
	studentID string
	gameType  quiz.GameType
}

// inflightGuard enforces at most one outstanding generation per
// (student, game type) slot.
type inflightGuard struct {
	mu    sync.Mutex
	slots map[slot]bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{slots: make(map[slot]bool)}
}

// tryAcquire claims the slot. Returns false when it is already held.
func (g *inflightGuard) tryAcquire(studentID string, gameType quiz.GameType) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := slot{studentID: studentID, gameType: gameType}
	if g.slots[s] {
		return false
	}
	g.slots[s] = true
	return true
}

func (g *inflightGuard) release(studentID string, gameType quiz.GameType) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.slots, slot{studentID: studentID, gameType: gameType})
}
