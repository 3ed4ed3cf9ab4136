package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathmentor/internal/diagnosis"
	"github.com/abhisek/mathmentor/internal/evaluation"
)

// errorBody is the JSON shape for all error responses.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleDiagnose(c *gin.Context) {
	var req diagnosis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "bad json: " + err.Error()})
		return
	}
	if msg := validateDiagnoseRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, errorBody{Error: msg})
		return
	}

	result, err := s.diag.Diagnose(c.Request.Context(), &req)
	if err != nil {
		var noCands *diagnosis.ErrNoValidCandidates
		if errors.As(err, &noCands) {
			c.JSON(http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
			return
		}
		s.log.Error("diagnosis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// validateDiagnoseRequest checks required fields before any pipeline work.
// Returns an empty string when the request is acceptable.
func validateDiagnoseRequest(req *diagnosis.Request) string {
	switch {
	case req.Question == "":
		return "question is required"
	case req.CorrectAnswer == "":
		return "correct_answer is required"
	case req.StudentAnswer == "":
		return "student_answer is required"
	case req.Topic == "":
		return "topic is required"
	}
	return ""
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "bad json: " + err.Error()})
		return
	}
	if req.Question == "" || req.CorrectAnswer == "" || req.StudentAnswer == "" {
		c.JSON(http.StatusBadRequest, errorBody{Error: "question, correct_answer and student_answer are required"})
		return
	}

	result := s.eval.Evaluate(c.Request.Context(), &req)
	c.JSON(http.StatusOK, result)
}

// handleLLMStats summarizes the LLM audit log grouped by purpose.
// ?hours=N bounds the window, default 24.
func (s *Server) handleLLMStats(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusServiceUnavailable, errorBody{Error: "audit log not configured"})
		return
	}

	hours := 24
	if h := c.Query("hours"); h != "" {
		v, err := strconv.Atoi(h)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, errorBody{Error: "hours must be a positive integer"})
			return
		}
		hours = v
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	stats, err := s.audit.StatsByPurpose(c.Request.Context(), since)
	if err != nil {
		s.log.Error("llm stats query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"since": since.UTC().Format(time.RFC3339),
		"stats": stats,
	})
}
