package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/adaptive"
	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/quiz"
	"github.com/odaklab/adaptiq/internal/store"
)

type createStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Age       int    `json:"age" binding:"required,gt=0"`
}

func (s *Server) createStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.tracker.InitializePlayer(req.StudentID, req.Age)
	c.JSON(http.StatusCreated, s.tracker.GetPerformance(req.StudentID))
}

type emotionReading struct {
	Emotion    string  `json:"emotion" binding:"required"`
	Confidence float64 `json:"confidence"`
	Timestamp  int64   `json:"timestamp"`
}

func (r emotionReading) toResult() (emotion.Result, bool) {
	e := emotion.Emotion(r.Emotion)
	if !e.Valid() {
		return emotion.Result{}, false
	}
	ts := time.UnixMilli(r.Timestamp)
	if r.Timestamp == 0 {
		ts = time.Now()
	}
	return emotion.Result{Emotion: e, Confidence: r.Confidence, Timestamp: ts}, true
}

type generateQuestionRequest struct {
	StudentID      string          `json:"studentId" binding:"required"`
	GameType       string          `json:"gameType" binding:"required"`
	Age            int             `json:"age" binding:"required,gt=0"`
	CurrentEmotion *emotionReading `json:"currentEmotion"`
}

func (s *Server) generateQuestion(c *gin.Context) {
	var req generateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var current *emotion.Result
	if req.CurrentEmotion != nil {
		res, ok := req.CurrentEmotion.toResult()
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown emotion: " + req.CurrentEmotion.Emotion})
			return
		}
		current = &res
	}

	q, err := s.generator.GenerateQuestionWithContext(
		c.Request.Context(), req.StudentID, quiz.GameType(req.GameType), req.Age, current)
	if err != nil {
		s.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

type auxQuestionRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

func (s *Server) generateMathQuestion(c *gin.Context) {
	s.auxQuestion(c, s.generator.GenerateMathQuestion)
}

func (s *Server) generateScienceQuestion(c *gin.Context) {
	s.auxQuestion(c, s.generator.GenerateScienceQuestion)
}

func (s *Server) auxQuestion(c *gin.Context, gen func(context.Context, quiz.Difficulty) (*quiz.Question, error)) {
	var req auxQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty := quiz.Difficulty(req.Difficulty)
	if !difficulty.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty: " + req.Difficulty})
		return
	}

	q, err := gen(c.Request.Context(), difficulty)
	if err != nil {
		s.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

type recordResultRequest struct {
	StudentID           string           `json:"studentId" binding:"required"`
	GameType            string           `json:"gameType" binding:"required"`
	Score               int              `json:"score"`
	TotalQuestions      int              `json:"totalQuestions" binding:"required,gt=0"`
	ResponseTimeSeconds float64          `json:"responseTimeSeconds"`
	Emotions            []emotionReading `json:"emotions"`
}

func (s *Server) recordResult(c *gin.Context) {
	var req recordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emotions := make([]emotion.Result, 0, len(req.Emotions))
	names := make([]string, 0, len(req.Emotions))
	for _, r := range req.Emotions {
		res, ok := r.toResult()
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown emotion: " + r.Emotion})
			return
		}
		emotions = append(emotions, res)
		names = append(names, r.Emotion)
	}

	s.tracker.RecordGameResult(req.StudentID, req.Score, req.TotalQuestions,
		req.ResponseTimeSeconds, quiz.GameType(req.GameType), emotions)

	perf := s.tracker.GetPerformance(req.StudentID)
	if perf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not initialized"})
		return
	}

	ev := store.RoundEvent{
		StudentID:           req.StudentID,
		GameType:            req.GameType,
		Score:               req.Score,
		TotalQuestions:      req.TotalQuestions,
		ResponseTimeSeconds: req.ResponseTimeSeconds,
		Emotions:            names,
		DifficultyAfter:     string(perf.CurrentDifficulty),
	}
	if err := s.recorder.AppendRound(c.Request.Context(), ev); err != nil {
		s.log.Warn("failed to record round event", zap.Error(err))
	}

	c.JSON(http.StatusOK, perf)
}

func (s *Server) getPerformance(c *gin.Context) {
	perf := s.tracker.ExportPerformanceData(c.Param("id"))
	if perf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not initialized"})
		return
	}
	c.JSON(http.StatusOK, perf)
}

func (s *Server) resetPerformance(c *gin.Context) {
	s.tracker.ResetPerformance(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) getInsights(c *gin.Context) {
	insights := s.tracker.Insights(c.Param("id"))
	if insights == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not initialized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func (s *Server) getStrategy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategy": s.tracker.AdaptationStrategy(c.Param("id"))})
}

func (s *Server) health(c *gin.Context) {
	status := gin.H{"status": "ok", "model": s.provider.ModelID()}
	if hc, ok := s.provider.(llm.HealthChecker); ok {
		if !hc.Healthy(c.Request.Context()) {
			status["status"] = "degraded"
			status["backend"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["backend"] = "ok"
	}
	c.JSON(http.StatusOK, status)
}

// writeGenerationError maps generator errors to HTTP statuses.
func (s *Server) writeGenerationError(c *gin.Context, err error) {
	var unsupported *adaptive.ErrUnsupportedGameType
	switch {
	case errors.As(err, &unsupported):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, adaptive.ErrGenerationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, adaptive.ErrNotInitialized):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
