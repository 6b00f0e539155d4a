package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryGenerationEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.AppendGeneration(ctx, GenerationEvent{
			StudentID:  "s1",
			GameType:   "word-image",
			Strategy:   "encourage",
			Difficulty: "kolay",
			Source:     "backend",
			Model:      "test-model",
			QuestionID: "q1",
			LatencyMs:  int64(100 + i),
			Success:    i != 1,
			Error:      map[bool]string{true: "", false: "boom"}[i != 1],
		})
		require.NoError(t, err)
	}
	require.NoError(t, s.AppendGeneration(ctx, GenerationEvent{StudentID: "other"}))

	events, err := s.RecentGenerations(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Newest first.
	require.Equal(t, int64(102), events[0].LatencyMs)
	require.True(t, events[0].Success)
	require.False(t, events[1].Success)
	require.Equal(t, "boom", events[1].Error)
	require.False(t, events[0].CreatedAt.IsZero())

	limited, err := s.RecentGenerations(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestAppendAndQueryRoundEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.AppendRound(ctx, RoundEvent{
		StudentID:           "s1",
		GameType:            "number",
		Score:               4,
		TotalQuestions:      5,
		ResponseTimeSeconds: 3.5,
		Emotions:            []string{"happy", "focused"},
		DifficultyAfter:     "medium",
	})
	require.NoError(t, err)

	err = s.AppendRound(ctx, RoundEvent{
		StudentID:       "s1",
		GameType:        "color",
		TotalQuestions:  5,
		DifficultyAfter: "medium",
	})
	require.NoError(t, err)

	events, err := s.RecentRounds(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, "color", events[0].GameType)
	require.Nil(t, events[0].Emotions)
	require.Equal(t, []string{"happy", "focused"}, events[1].Emotions)
	require.Equal(t, 4, events[1].Score)
	require.InDelta(t, 3.5, events[1].ResponseTimeSeconds, 1e-9)
}

func TestRecentForUnknownStudentIsEmpty(t *testing.T) {
	s := openTestStore(t)

	events, err := s.RecentGenerations(context.Background(), "ghost", 5)
	require.NoError(t, err)
	require.Empty(t, events)
}
