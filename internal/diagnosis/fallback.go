package diagnosis

import (
	"fmt"

	"github.com/abhisek/mathmentor/internal/catalog"
)

// fallbackConfidences are intentionally low-but-present so downstream
// consumers can tell a template response from a model-derived one without
// the schema's numeric bounds being violated.
var fallbackConfidences = [RankedCount]float64{0.35, 0.25, 0.15}

// deterministicFallback assembles a guaranteed-valid response from the
// catalog alone. It never fails. The first three resolved candidates fill
// the ranking; when fewer than three exist, candidates are reused
// cyclically with generic low-confidence framing so every id stays inside
// the candidate set.
func deterministicFallback(topic string, cands []*catalog.Misconception) *Response {
	resp := &Response{
		Misconceptions:  make([]DiagnosedMisconception, RankedCount),
		FollowUp:        FollowUpQuestion(catalog.FollowUp(topic)),
		TeachBackPrompt: catalog.TeachBack(topic),
		KeyTakeaway:     catalog.KeyTakeaway(topic),
	}

	for i := 0; i < RankedCount; i++ {
		c := cands[i%len(cands)]
		entry := DiagnosedMisconception{
			ID:          c.ID,
			Name:        c.Name,
			Confidence:  fallbackConfidences[i],
			Evidence:    NoEvidence,
			Diagnosis:   c.Description,
			Remediation: c.RemediationTemplate,
		}
		if i >= len(cands) {
			entry.Name = fmt.Sprintf("%s (alternative reading)", c.Name)
			entry.Diagnosis = fmt.Sprintf("A less likely reading of the same error: %s", c.Description)
		}
		resp.Misconceptions[i] = entry
	}

	return resp
}
