package evaluation

import "github.com/abhisek/mathmentor/internal/llm"

// EvaluationSchema defines the JSON schema for LLM answer evaluations.
// Unlike the diagnosis schema this one is strict: there is no repair stage,
// so a response that fails schema validation fails the call outright.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Correctness judgment for a student's math answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the student's answer is mathematically correct",
			},
			"solution_steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Ordered steps of the worked solution, age-appropriate for a child",
			},
			"short_feedback": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences about the student's attempt",
			},
		},
		"required":             []any{"is_correct", "solution_steps", "short_feedback"},
		"additionalProperties": false,
	},
}
