package diagnosis

import (
	"fmt"
	"strings"
)

// ErrNoValidCandidates indicates that no candidate ID survived resolution.
// It is the only pipeline error surfaced to the caller; everything else is
// absorbed into a degraded-but-valid response.
type ErrNoValidCandidates struct {
	Topic string
}

func (e *ErrNoValidCandidates) Error() string {
	return fmt.Sprintf("no valid candidate misconceptions for topic %q", e.Topic)
}

// ErrModelCall indicates the LLM call itself failed (transport, rate limit,
// timeout). Counted toward the attempt budget, never retried in place.
type ErrModelCall struct {
	Err error
}

func (e *ErrModelCall) Error() string {
	return fmt.Sprintf("model call failed: %v", e.Err)
}

func (e *ErrModelCall) Unwrap() error { return e.Err }

// ErrMalformedOutput indicates the model returned text that is not
// parseable as JSON.
type ErrMalformedOutput struct {
	Raw string
	Err error
}

func (e *ErrMalformedOutput) Error() string {
	return fmt.Sprintf("model output is not valid JSON: %v", e.Err)
}

func (e *ErrMalformedOutput) Unwrap() error { return e.Err }

// Violation is a single path-tagged contract violation found in a model
// response. Violations are quoted back to the model during repair.
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// ErrSchemaViolations carries the complete violation list for one response.
type ErrSchemaViolations struct {
	Violations []Violation
}

func (e *ErrSchemaViolations) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "response violates contract: " + strings.Join(msgs, "; ")
}
