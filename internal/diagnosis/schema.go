package diagnosis

import "github.com/abhisek/mathmentor/internal/llm"

// ResponseSchema defines the JSON contract for diagnosis responses. It is
// lenient: the provider sends it to the model to request structured output,
// but validation happens in this package so that violations can be listed
// and quoted back during repair rather than rejected wholesale.
var ResponseSchema = &llm.Schema{
	Name:        "misconception-diagnosis",
	Description: "Ranked misconception diagnosis of a wrong math answer with a follow-up lesson",
	Lenient:     true,
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconceptions": map[string]any{
				"type":        "array",
				"description": "Exactly 3 candidate misconceptions, most likely first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "description": "One of the allowed misconception ids"},
						"name":        map[string]any{"type": "string"},
						"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
						"evidence":    map[string]any{"type": "string", "description": "Quote from the student's work, or \"none provided\""},
						"diagnosis":   map[string]any{"type": "string"},
						"remediation": map[string]any{"type": "string"},
					},
					"required": []any{"id", "name", "confidence", "evidence", "diagnosis", "remediation"},
				},
			},
			"follow_up_question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt":         map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string"},
					"rationale":      map[string]any{"type": "string"},
				},
				"required": []any{"prompt", "correct_answer", "rationale"},
			},
			"teach_back_prompt": map[string]any{"type": "string"},
			"key_takeaway":      map[string]any{"type": "string", "maxLength": 100},
		},
		"required":             []any{"misconceptions", "follow_up_question", "teach_back_prompt", "key_takeaway"},
		"additionalProperties": false,
	},
}
