package diagnosis

// Request is the input for misconception diagnosis.
type Request struct {
	Question           string   `json:"question"`
	CorrectAnswer      string   `json:"correct_answer"`
	StudentAnswer      string   `json:"student_answer"`
	StudentExplanation string   `json:"student_explanation,omitempty"`
	Topic              string   `json:"topic"`
	CandidateIDs       []string `json:"candidate_ids"`
	Language           string   `json:"language,omitempty"`
}

// DiagnosedMisconception is one ranked entry in a diagnosis.
type DiagnosedMisconception struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence"`
	Evidence    string  `json:"evidence"`
	Diagnosis   string  `json:"diagnosis"`
	Remediation string  `json:"remediation"`
}

// FollowUpQuestion is the practice question attached to a diagnosis.
type FollowUpQuestion struct {
	Prompt        string `json:"prompt"`
	CorrectAnswer string `json:"correct_answer"`
	Rationale     string `json:"rationale"`
}

// Response is the diagnosis payload returned to the caller. It always
// contains exactly three ranked misconceptions, ordered by descending
// confidence.
type Response struct {
	Misconceptions  []DiagnosedMisconception `json:"misconceptions"`
	FollowUp        FollowUpQuestion         `json:"follow_up_question"`
	TeachBackPrompt string                   `json:"teach_back_prompt"`
	KeyTakeaway     string                   `json:"key_takeaway"`
}

// Status reports which pipeline stage produced the response.
type Status string

const (
	// StatusOK means the first model attempt in the requested language
	// validated cleanly.
	StatusOK Status = "ok"
	// StatusRetried means the response came from a repair retry or a
	// language fallback attempt.
	StatusRetried Status = "retried"
	// StatusFallback means every model attempt failed and the response
	// was assembled deterministically from the catalog.
	StatusFallback Status = "fallback"
)

// Meta is the non-schema envelope describing how the response was produced.
type Meta struct {
	Status             Status `json:"status"`
	Language           string `json:"language"`
	LanguageDowngraded bool   `json:"language_downgraded"`
	HeuristicFired     bool   `json:"heuristic_fired"`
}

// Result bundles the schema-valid payload with its metadata envelope.
type Result struct {
	Response *Response `json:"diagnosis"`
	Meta     Meta      `json:"meta"`
}

const (
	// RankedCount is the exact number of misconceptions in every response.
	RankedCount = 3

	// MaxTakeawayRunes bounds the key takeaway length.
	MaxTakeawayRunes = 100

	// NoEvidence is the sentinel used when no quote from the student's
	// work supports an entry.
	NoEvidence = "none provided"

	// DefaultLanguage is the language every attempt falls back to.
	DefaultLanguage = "en"

	// heuristicConfidence is the fixed confidence assigned when the
	// structural heuristic promotes or synthesizes the top entry.
	heuristicConfidence = 0.95
)
