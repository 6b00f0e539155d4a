package emotion

import (
	"math/rand/v2"
	"testing"
)

func TestValid(t *testing.T) {
	for _, e := range All {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}
	if Emotion("bored").Valid() {
		t.Error("unknown emotion should be invalid")
	}
	if Emotion("").Valid() {
		t.Error("empty emotion should be invalid")
	}
}

func TestSamplerDrawsOnlyKnownEmotions(t *testing.T) {
	s := NewSampler(rand.New(rand.NewPCG(1, 1)), nil)
	for i := 0; i < 500; i++ {
		r := s.Sample()
		if !r.Emotion.Valid() {
			t.Fatalf("sampled unknown emotion %q", r.Emotion)
		}
		if r.Confidence < 0.6 || r.Confidence > 1.0 {
			t.Fatalf("confidence %v outside [0.6,1.0]", r.Confidence)
		}
		if r.Timestamp.IsZero() {
			t.Fatal("timestamp not set")
		}
	}
}

func TestSamplerRespectsZeroWeights(t *testing.T) {
	s := NewSampler(rand.New(rand.NewPCG(2, 2)), map[Emotion]float64{Happy: 1})
	for i := 0; i < 100; i++ {
		if got := s.Sample().Emotion; got != Happy {
			t.Fatalf("got %q with happy-only weights", got)
		}
	}
}

func TestSampleN(t *testing.T) {
	s := NewSampler(rand.New(rand.NewPCG(3, 3)), nil)
	if got := len(s.SampleN(7)); got != 7 {
		t.Errorf("got %d samples, want 7", got)
	}
}
