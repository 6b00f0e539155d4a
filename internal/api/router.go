// Package api exposes the adaptive quiz service over HTTP.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/adaptive"
	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/store"
	"github.com/odaklab/adaptiq/internal/tracker"
)

// Server bundles the handlers' collaborators.
type Server struct {
	tracker   *tracker.Tracker
	generator *adaptive.Generator
	provider  llm.Provider
	recorder  store.EventRecorder
	log       *zap.Logger
}

// NewServer creates a Server. A nil recorder disables event
// persistence; a nil logger disables logging.
func NewServer(tr *tracker.Tracker, gen *adaptive.Generator, provider llm.Provider, recorder store.EventRecorder, log *zap.Logger) *Server {
	if recorder == nil {
		recorder = store.NopRecorder{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		tracker:   tr,
		generator: gen,
		provider:  provider,
		recorder:  recorder,
		log:       log,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(corsMiddleware())

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/students", s.createStudent)
		v1.GET("/students/:id/performance", s.getPerformance)
		v1.DELETE("/students/:id/performance", s.resetPerformance)
		v1.GET("/students/:id/insights", s.getInsights)
		v1.GET("/students/:id/strategy", s.getStrategy)

		v1.POST("/questions", s.generateQuestion)
		v1.POST("/questions/math", s.generateMathQuestion)
		v1.POST("/questions/science", s.generateScienceQuestion)

		v1.POST("/results", s.recordResult)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
}
