package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerationEvent records one question-generation attempt, successful
// or not. Events are append-only.
type GenerationEvent struct {
	StudentID  string
	GameType   string
	Strategy   string
	Difficulty string
	Source     string
	Model      string
	QuestionID string
	LatencyMs  int64
	Success    bool
	Error      string
	CreatedAt  time.Time
}

// RoundEvent records one completed game round as reported by the
// client.
type RoundEvent struct {
	StudentID           string
	GameType            string
	Score               int
	TotalQuestions      int
	ResponseTimeSeconds float64
	Emotions            []string
	DifficultyAfter     string
	CreatedAt           time.Time
}

// EventRecorder appends audit events. Implementations must not block
// the request path on failure; callers log and continue.
type EventRecorder interface {
	AppendGeneration(ctx context.Context, ev GenerationEvent) error
	AppendRound(ctx context.Context, ev RoundEvent) error
}

var _ EventRecorder = (*Store)(nil)

// AppendGeneration implements EventRecorder.
func (s *Store) AppendGeneration(ctx context.Context, ev GenerationEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_events
		 (student_id, game_type, strategy, difficulty, source, model, question_id, latency_ms, success, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.StudentID, ev.GameType, ev.Strategy, ev.Difficulty, ev.Source,
		ev.Model, ev.QuestionID, ev.LatencyMs, boolToInt(ev.Success), ev.Error,
	)
	if err != nil {
		return fmt.Errorf("append generation event: %w", err)
	}
	return nil
}

// AppendRound implements EventRecorder.
func (s *Store) AppendRound(ctx context.Context, ev RoundEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO round_events
		 (student_id, game_type, score, total_questions, response_time_seconds, emotions, difficulty_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.StudentID, ev.GameType, ev.Score, ev.TotalQuestions,
		ev.ResponseTimeSeconds, strings.Join(ev.Emotions, ","), ev.DifficultyAfter,
	)
	if err != nil {
		return fmt.Errorf("append round event: %w", err)
	}
	return nil
}

// RecentGenerations returns the latest generation events for a
// student, newest first.
func (s *Store) RecentGenerations(ctx context.Context, studentID string, limit int) ([]GenerationEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, game_type, strategy, difficulty, source, model, question_id, latency_ms, success, error, created_at
		 FROM generation_events WHERE student_id = ? ORDER BY id DESC LIMIT ?`,
		studentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var events []GenerationEvent
	for rows.Next() {
		var ev GenerationEvent
		var success int
		var createdAt string
		if err := rows.Scan(&ev.StudentID, &ev.GameType, &ev.Strategy, &ev.Difficulty,
			&ev.Source, &ev.Model, &ev.QuestionID, &ev.LatencyMs, &success, &ev.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		ev.Success = success != 0
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// RecentRounds returns the latest round events for a student, newest
// first.
func (s *Store) RecentRounds(ctx context.Context, studentID string, limit int) ([]RoundEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, game_type, score, total_questions, response_time_seconds, emotions, difficulty_after, created_at
		 FROM round_events WHERE student_id = ? ORDER BY id DESC LIMIT ?`,
		studentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}
	defer rows.Close()

	var events []RoundEvent
	for rows.Next() {
		var ev RoundEvent
		var emotions, createdAt string
		if err := rows.Scan(&ev.StudentID, &ev.GameType, &ev.Score, &ev.TotalQuestions,
			&ev.ResponseTimeSeconds, &emotions, &ev.DifficultyAfter, &createdAt); err != nil {
			return nil, fmt.Errorf("scan round event: %w", err)
		}
		if emotions != "" {
			ev.Emotions = strings.Split(emotions, ",")
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// NopRecorder discards all events. Used when auditing is disabled.
type NopRecorder struct{}

func (NopRecorder) AppendGeneration(context.Context, GenerationEvent) error { return nil }
func (NopRecorder) AppendRound(context.Context, RoundEvent) error          { return nil }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
