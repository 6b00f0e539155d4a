package emotion

import "time"

// Emotion is a discrete emotion label produced by the camera-side
// detector. The detector itself is an external collaborator; this
// package only defines the vocabulary it speaks.
type Emotion string

const (
	Happy    Emotion = "happy"
	Sad      Emotion = "sad"
	Angry    Emotion = "angry"
	Neutral  Emotion = "neutral"
	Focused  Emotion = "focused"
	Confused Emotion = "confused"
)

// All lists every emotion in canonical order. Frequency tie-breaks
// resolve to the earliest entry in this slice.
var All = []Emotion{Happy, Sad, Angry, Neutral, Focused, Confused}

// Valid reports whether e is a known emotion label.
func (e Emotion) Valid() bool {
	for _, known := range All {
		if e == known {
			return true
		}
	}
	return false
}

// Result is a single emotion observation.
type Result struct {
	Emotion    Emotion   `json:"emotion"`
	Confidence float64   `json:"confidence"` // in [0,1]
	Timestamp  time.Time `json:"timestamp"`
}
