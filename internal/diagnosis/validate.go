package diagnosis

import (
	"fmt"
	"unicode/utf8"
)

// validateRaw checks the response contract and returns every violation
// found, path-tagged so the repair controller can quote them back to the
// model. An empty slice means the response is valid.
func validateRaw(raw *rawDiagnosis) []Violation {
	var violations []Violation

	if len(raw.Misconceptions) != RankedCount {
		violations = append(violations, Violation{
			Path:    "misconceptions",
			Message: fmt.Sprintf("must contain exactly %d entries, got %d", RankedCount, len(raw.Misconceptions)),
		})
	}

	for i, m := range raw.Misconceptions {
		path := fmt.Sprintf("misconceptions[%d]", i)
		if m.ID == "" {
			violations = append(violations, Violation{Path: path + ".id", Message: "must be non-empty"})
		}
		if m.Name == "" {
			violations = append(violations, Violation{Path: path + ".name", Message: "must be non-empty"})
		}
		switch {
		case m.Confidence == nil:
			violations = append(violations, Violation{Path: path + ".confidence", Message: "must be a number between 0 and 1"})
		case *m.Confidence < 0 || *m.Confidence > 1:
			violations = append(violations, Violation{Path: path + ".confidence", Message: fmt.Sprintf("must be between 0 and 1, got %g", *m.Confidence)})
		}
		if m.Evidence == "" {
			violations = append(violations, Violation{Path: path + ".evidence", Message: fmt.Sprintf("must be a quote from the student's work or %q", NoEvidence)})
		}
		if m.Diagnosis == "" {
			violations = append(violations, Violation{Path: path + ".diagnosis", Message: "must be non-empty"})
		}
		if m.Remediation == "" {
			violations = append(violations, Violation{Path: path + ".remediation", Message: "must be non-empty"})
		}
	}

	if raw.FollowUp.Prompt == "" {
		violations = append(violations, Violation{Path: "follow_up_question.prompt", Message: "must be non-empty"})
	}
	if raw.FollowUp.CorrectAnswer == "" {
		violations = append(violations, Violation{Path: "follow_up_question.correct_answer", Message: "must be non-empty"})
	}
	if raw.FollowUp.Rationale == "" {
		violations = append(violations, Violation{Path: "follow_up_question.rationale", Message: "must be non-empty"})
	}

	if raw.TeachBack == "" {
		violations = append(violations, Violation{Path: "teach_back_prompt", Message: "must be non-empty"})
	}

	switch n := utf8.RuneCountInString(raw.KeyTakeaway); {
	case n == 0:
		violations = append(violations, Violation{Path: "key_takeaway", Message: "must be non-empty"})
	case n > MaxTakeawayRunes:
		violations = append(violations, Violation{Path: "key_takeaway", Message: fmt.Sprintf("must be at most %d characters, got %d", MaxTakeawayRunes, n)})
	}

	return violations
}
