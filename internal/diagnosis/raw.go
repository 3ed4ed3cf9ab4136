package diagnosis

// rawDiagnosis is the model's output after lenient coercion from the
// untyped JSON document. Field presence is not trusted until validated;
// confidence is a pointer so a missing number is distinguishable from 0.
type rawDiagnosis struct {
	Misconceptions []rawMisconception
	FollowUp       rawFollowUp
	TeachBack      string
	KeyTakeaway    string
}

type rawMisconception struct {
	ID          string
	Name        string
	Confidence  *float64
	Evidence    string
	Diagnosis   string
	Remediation string
}

type rawFollowUp struct {
	Prompt        string
	CorrectAnswer string
	Rationale     string
}

// decodeRaw coerces an untyped JSON document into a rawDiagnosis.
// Wrong-typed or missing fields become zero values and are reported later
// by the validator, never trusted here.
func decodeRaw(doc map[string]any) *rawDiagnosis {
	raw := &rawDiagnosis{
		TeachBack:   asString(doc["teach_back_prompt"]),
		KeyTakeaway: asString(doc["key_takeaway"]),
	}

	if items, ok := doc["misconceptions"].([]any); ok {
		raw.Misconceptions = make([]rawMisconception, 0, len(items))
		for _, it := range items {
			obj, ok := it.(map[string]any)
			if !ok {
				raw.Misconceptions = append(raw.Misconceptions, rawMisconception{})
				continue
			}
			raw.Misconceptions = append(raw.Misconceptions, rawMisconception{
				ID:          asString(obj["id"]),
				Name:        asString(obj["name"]),
				Confidence:  asNumber(obj["confidence"]),
				Evidence:    asString(obj["evidence"]),
				Diagnosis:   asString(obj["diagnosis"]),
				Remediation: asString(obj["remediation"]),
			})
		}
	}

	if fq, ok := doc["follow_up_question"].(map[string]any); ok {
		raw.FollowUp = rawFollowUp{
			Prompt:        asString(fq["prompt"]),
			CorrectAnswer: asString(fq["correct_answer"]),
			Rationale:     asString(fq["rationale"]),
		}
	}

	return raw
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	}
	return nil
}

// toResponse converts a validated rawDiagnosis into the response payload.
func (r *rawDiagnosis) toResponse() *Response {
	resp := &Response{
		Misconceptions: make([]DiagnosedMisconception, len(r.Misconceptions)),
		FollowUp: FollowUpQuestion{
			Prompt:        r.FollowUp.Prompt,
			CorrectAnswer: r.FollowUp.CorrectAnswer,
			Rationale:     r.FollowUp.Rationale,
		},
		TeachBackPrompt: r.TeachBack,
		KeyTakeaway:     r.KeyTakeaway,
	}
	for i, m := range r.Misconceptions {
		var conf float64
		if m.Confidence != nil {
			conf = *m.Confidence
		}
		resp.Misconceptions[i] = DiagnosedMisconception{
			ID:          m.ID,
			Name:        m.Name,
			Confidence:  conf,
			Evidence:    m.Evidence,
			Diagnosis:   m.Diagnosis,
			Remediation: m.Remediation,
		}
	}
	return resp
}
