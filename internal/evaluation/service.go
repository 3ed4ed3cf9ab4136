package evaluation

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/abhisek/mathmentor/internal/llm"
)

// Config holds evaluation tuning knobs.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended evaluation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.2,
	}
}

// Service evaluates student answers. One model call per request; any
// failure substitutes a deterministic string-equality judgment instead of
// chaining repair or language stages.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates an evaluation service. A nil logger is replaced with
// a no-op logger.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Evaluate judges one answer. It never returns an error: when the model
// call fails or its output does not parse, the deterministic fallback
// takes over and the metadata discloses it.
func (s *Service) Evaluate(ctx context.Context, req *Request) *Result {
	ctx = llm.WithPurpose(ctx, "evaluation")

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, req.Language)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		s.log.Info("evaluation model call failed, using deterministic fallback", zap.Error(err))
		return s.fallback(req)
	}

	var out Response
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		s.log.Info("evaluation response unparseable, using deterministic fallback", zap.Error(err))
		return s.fallback(req)
	}
	if out.ShortFeedback == "" || len(out.SolutionSteps) == 0 {
		s.log.Info("evaluation response incomplete, using deterministic fallback")
		return s.fallback(req)
	}

	return &Result{Response: out, Meta: Meta{Status: StatusOK}}
}

// fallback judges by normalized string equality and serves canned feedback.
func (s *Service) fallback(req *Request) *Result {
	correct := answersMatch(req.StudentAnswer, req.CorrectAnswer)

	feedback := "That's not quite right. Compare your answer with the correct one and try to spot where they differ."
	if correct {
		feedback = "Well done, your answer is correct!"
	}

	return &Result{
		Response: Response{
			IsCorrect: correct,
			SolutionSteps: []string{
				"Work through the problem step by step.",
				"The correct answer is " + req.CorrectAnswer + ".",
			},
			ShortFeedback: feedback,
		},
		Meta: Meta{Status: StatusFallback},
	}
}
