package worker

import (
	"sort"
	"testing"
)

func TestPoolRunsAllJobs(t *testing.T) {
	pool := NewPool[int](3, 10)
	defer pool.Close()

	for i := 0; i < 10; i++ {
		n := i
		pool.Submit("job", func() int { return n * 2 })
	}

	var outputs []int
	for i := 0; i < 10; i++ {
		outputs = append(outputs, (<-pool.Results()).Output)
	}

	sort.Ints(outputs)
	for i, got := range outputs {
		if got != i*2 {
			t.Errorf("outputs[%d] = %d, want %d", i, got, i*2)
		}
	}
}

func TestPoolPreservesJobIDs(t *testing.T) {
	pool := NewPool[string](2, 4)
	defer pool.Close()

	pool.Submit("a", func() string { return "ra" })
	pool.Submit("b", func() string { return "rb" })

	got := map[string]string{}
	for i := 0; i < 2; i++ {
		r := <-pool.Results()
		got[r.JobID] = r.Output
	}

	if got["a"] != "ra" || got["b"] != "rb" {
		t.Errorf("results mismatched ids: %v", got)
	}
}
