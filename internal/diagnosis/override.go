package diagnosis

import "github.com/abhisek/mathmentor/internal/catalog"

// applyHeuristicOverride force-ranks the structurally detected
// misconception first. It runs against whichever model stage produced the
// base ranking — never against the deterministic fallback, which is not
// model-derived. The function is idempotent: applying it twice yields the
// same ranking.
//
// Cases:
//   - already ranked first: confidence raised to the fixed high value
//   - ranked lower: moved to rank 1 with the fixed confidence
//   - absent: a new top entry is synthesized from the catalog template
//
// The list is truncated back to RankedCount in all cases.
func applyHeuristicOverride(resp *Response, match HeuristicMatch) {
	c := catalog.Get(match.MisconceptionID)
	if c == nil {
		return
	}

	idx := -1
	for i := range resp.Misconceptions {
		if resp.Misconceptions[i].ID == match.MisconceptionID {
			idx = i
			break
		}
	}

	switch {
	case idx == 0:
		resp.Misconceptions[0].Confidence = heuristicConfidence

	case idx > 0:
		promoted := resp.Misconceptions[idx]
		promoted.Confidence = heuristicConfidence
		rest := make([]DiagnosedMisconception, 0, len(resp.Misconceptions)-1)
		rest = append(rest, resp.Misconceptions[:idx]...)
		rest = append(rest, resp.Misconceptions[idx+1:]...)
		resp.Misconceptions = append([]DiagnosedMisconception{promoted}, rest...)

	default:
		evidence := match.Evidence
		if evidence == "" {
			evidence = NoEvidence
		}
		synthesized := DiagnosedMisconception{
			ID:          c.ID,
			Name:        c.Name,
			Confidence:  heuristicConfidence,
			Evidence:    evidence,
			Diagnosis:   c.Description,
			Remediation: c.RemediationTemplate,
		}
		resp.Misconceptions = append([]DiagnosedMisconception{synthesized}, resp.Misconceptions...)
	}

	if len(resp.Misconceptions) > RankedCount {
		resp.Misconceptions = resp.Misconceptions[:RankedCount]
	}
}
