// Package server exposes the diagnosis and evaluation pipelines over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathmentor/internal/diagnosis"
	"github.com/abhisek/mathmentor/internal/evaluation"
	"github.com/abhisek/mathmentor/internal/store"
)

// Server wires the pipelines into a gin engine.
type Server struct {
	diag  *diagnosis.Service
	eval  *evaluation.Service
	audit store.AuditLog
	log   *zap.Logger

	engine *gin.Engine
	http   *http.Server
}

// New creates a Server. audit may be nil, in which case the stats endpoint
// reports unavailable. A nil logger is replaced with a no-op logger.
func New(addr string, diag *diagnosis.Service, eval *evaluation.Service, audit store.AuditLog, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{diag: diag, eval: eval, audit: audit, log: log}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(RequestLogger(log), gin.Recovery())

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api/v1")
	{
		api.POST("/diagnose", s.handleDiagnose)
		api.POST("/evaluate", s.handleEvaluate)
		api.GET("/llm/stats", s.handleLLMStats)
	}

	s.engine = engine
	s.http = &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info("http server listening", zap.String("addr", s.http.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("shutting down http server")
	return s.http.Shutdown(shutdownCtx)
}
