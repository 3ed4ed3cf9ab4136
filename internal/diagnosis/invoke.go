package diagnosis

import (
	"context"
	"encoding/json"

	"github.com/abhisek/mathmentor/internal/llm"
)

// invoke makes one model call and parses the returned text into an untyped
// JSON document. Transport failures become ErrModelCall; unparseable text
// becomes ErrMalformedOutput. Neither is retried here — the pipeline's
// stage controllers own the attempt budget.
func (s *Service) invoke(ctx context.Context, system string, messages []llm.Message, temperature float64) (map[string]any, string, error) {
	req := llm.Request{
		System:      system,
		Messages:    messages,
		Schema:      ResponseSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, "", &ErrModelCall{Err: err}
	}

	text := string(resp.Content)
	var doc map[string]any
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		return nil, text, &ErrMalformedOutput{Raw: text, Err: err}
	}

	return doc, text, nil
}
