package adaptive

import (
	"errors"
	"fmt"

	"github.com/odaklab/adaptiq/internal/quiz"
)

// ErrGenerationInFlight is returned when a generation request for the
// same (student, game type) slot is already outstanding. The duplicate
// request is dropped, not queued.
var ErrGenerationInFlight = errors.New("generation already in flight for this student and game type")

// ErrNotInitialized is returned when a student has no performance
// record. It should not occur on the generation path, where
// initialization is forced first.
var ErrNotInitialized = errors.New("no performance data for student")

// ErrUnsupportedGameType indicates a request for a game type the
// adaptive generator does not serve.
type ErrUnsupportedGameType struct {
	GameType quiz.GameType
}

func (e *ErrUnsupportedGameType) Error() string {
	return fmt.Sprintf("unsupported game type: %q", e.GameType)
}
