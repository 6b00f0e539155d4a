package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/store"
)

// LoggingProvider is a decorator that records every generation attempt
// as an event and logs it.
type LoggingProvider struct {
	inner    Provider
	recorder store.EventRecorder
	log      *zap.Logger
}

var _ Provider = (*LoggingProvider)(nil)

// WithLogging wraps a Provider with event recording. A nil recorder
// disables persistence; a nil logger disables logging.
func WithLogging(p Provider, recorder store.EventRecorder, log *zap.Logger) Provider {
	if recorder == nil {
		recorder = store.NopRecorder{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, recorder: recorder, log: log}
}

// GenerateQuestion implements Provider.
func (l *LoggingProvider) GenerateQuestion(ctx context.Context, req QuestionRequest) (*quiz.Question, error) {
	start := time.Now()
	scope := ScopeFrom(ctx)

	q, err := l.inner.GenerateQuestion(ctx, req)

	ev := store.GenerationEvent{
		StudentID:  scope.StudentID,
		GameType:   scope.GameType,
		Strategy:   scope.Strategy,
		Difficulty: string(req.Difficulty),
		Source:     string(quiz.SourceBackend),
		Model:      l.inner.ModelID(),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if q != nil {
		ev.QuestionID = q.ID
	}
	if err != nil {
		ev.Error = err.Error()
	}

	// Record the event but never fail the request over it.
	if recErr := l.recorder.AppendGeneration(ctx, ev); recErr != nil {
		l.log.Warn("failed to record generation event", zap.Error(recErr))
	}

	if err != nil {
		l.log.Warn("generation failed",
			zap.String("model", ev.Model),
			zap.String("student_id", scope.StudentID),
			zap.String("game_type", scope.GameType),
			zap.Int64("latency_ms", ev.LatencyMs),
			zap.Error(err))
	} else {
		l.log.Debug("generation succeeded",
			zap.String("model", ev.Model),
			zap.String("student_id", scope.StudentID),
			zap.String("question_id", ev.QuestionID),
			zap.Int64("latency_ms", ev.LatencyMs))
	}

	return q, err
}

// ModelID implements Provider.
func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Healthy delegates to the inner provider when it supports probing.
func (l *LoggingProvider) Healthy(ctx context.Context) bool {
	if hc, ok := l.inner.(HealthChecker); ok {
		return hc.Healthy(ctx)
	}
	return true
}
