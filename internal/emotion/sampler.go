package emotion

import (
	"math/rand/v2"
	"time"
)

// Sampler is a stand-in for the real camera-based emotion detector.
// It draws emotions from a weighted distribution, which is enough to
// drive the tracker and the simulator without any video pipeline.
type Sampler struct {
	rng     *rand.Rand
	weights map[Emotion]float64
	total   float64
	now     func() time.Time
}

// DefaultWeights approximates what the detector reports during a
// typical session: mostly neutral and focused, with occasional spikes.
var DefaultWeights = map[Emotion]float64{
	Happy:    0.20,
	Sad:      0.10,
	Angry:    0.05,
	Neutral:  0.30,
	Focused:  0.25,
	Confused: 0.10,
}

// NewSampler creates a sampler with the given weights. A nil rng gets a
// time-seeded source; nil weights fall back to DefaultWeights.
func NewSampler(rng *rand.Rand, weights map[Emotion]float64) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if weights == nil {
		weights = DefaultWeights
	}
	s := &Sampler{rng: rng, weights: weights, now: time.Now}
	for _, e := range All {
		s.total += weights[e]
	}
	return s
}

// Sample draws one weighted emotion observation.
func (s *Sampler) Sample() Result {
	r := s.rng.Float64() * s.total
	picked := Neutral
	for _, e := range All {
		w := s.weights[e]
		if r < w {
			picked = e
			break
		}
		r -= w
	}
	return Result{
		Emotion:    picked,
		Confidence: 0.6 + 0.4*s.rng.Float64(),
		Timestamp:  s.now(),
	}
}

// SampleN draws n observations.
func (s *Sampler) SampleN(n int) []Result {
	out := make([]Result, 0, n)
	for range n {
		out = append(out, s.Sample())
	}
	return out
}
