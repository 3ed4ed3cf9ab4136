package diagnosis

import "github.com/abhisek/mathmentor/internal/catalog"

// sanitizeIDs rewrites every ranked id that is not in the candidate
// whitelist to candidates[index mod len(candidates)]. Models occasionally
// invent or translate ids; positional substitution keeps the entry's other
// text while guaranteeing the id is valid.
//
// This is a lossy repair: an invented id's explanation may end up paired
// with an unrelated real id. Tolerated for now — the alternative is
// discarding and regenerating the single bad entry.
func sanitizeIDs(raw *rawDiagnosis, cands []*catalog.Misconception) {
	if len(cands) == 0 {
		return
	}

	valid := make(map[string]bool, len(cands))
	for _, c := range cands {
		valid[c.ID] = true
	}

	for i := range raw.Misconceptions {
		if !valid[raw.Misconceptions[i].ID] {
			raw.Misconceptions[i].ID = cands[i%len(cands)].ID
		}
	}
}
