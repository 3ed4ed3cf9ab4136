package diagnosis

import "github.com/abhisek/mathmentor/internal/catalog"

// ResolveCandidates loads the catalog records for the caller-supplied
// candidate IDs, preserving order and silently dropping unknown IDs.
// For heuristic-eligible topics the heuristic's misconception is appended
// when absent, so the structural check always has a valid target.
// Returns ErrNoValidCandidates if nothing survives resolution.
func ResolveCandidates(topic string, ids []string) ([]*catalog.Misconception, error) {
	seen := make(map[string]bool, len(ids))
	resolved := make([]*catalog.Misconception, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if m := catalog.Get(id); m != nil {
			resolved = append(resolved, m)
		}
	}

	if heurID, ok := catalog.HeuristicMisconceptionID(topic); ok && !seen[heurID] {
		if m := catalog.Get(heurID); m != nil {
			resolved = append(resolved, m)
		}
	}

	if len(resolved) == 0 {
		return nil, &ErrNoValidCandidates{Topic: topic}
	}
	return resolved, nil
}

// candidateIDs extracts the ID whitelist from resolved candidates.
func candidateIDs(cands []*catalog.Misconception) []string {
	ids := make([]string, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}
	return ids
}
