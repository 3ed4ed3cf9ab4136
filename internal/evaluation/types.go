package evaluation

// Request describes one answer to evaluate.
type Request struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	StudentAnswer string `json:"student_answer"`
	Language      string `json:"language,omitempty"`
}

// Response is the evaluation payload returned to the client.
type Response struct {
	IsCorrect     bool     `json:"is_correct"`
	SolutionSteps []string `json:"solution_steps"`
	ShortFeedback string   `json:"short_feedback"`
}

// Status describes how the evaluation was produced.
type Status string

const (
	StatusOK       Status = "ok"
	StatusFallback Status = "fallback"
)

// Meta discloses degradation alongside the payload.
type Meta struct {
	Status Status `json:"status"`
}

// Result is the full evaluation envelope.
type Result struct {
	Response Response `json:"evaluation"`
	Meta     Meta     `json:"meta"`
}
