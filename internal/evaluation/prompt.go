package evaluation

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a math tutor for students aged 8-13 evaluating a student's answer.

Rules:
- Judge mathematical correctness only. Equivalent forms count as correct (e.g. "2/4" for "1/2", "3.50" for "3.5").
- solution_steps must walk through the solution one step per entry, in order.
- short_feedback is one or two sentences, encouraging, addressed to the student.
- Output in the requested language. Do NOT translate JSON field names.
- Respond with valid JSON matching the provided schema. No markdown, no commentary.`

// buildUserMessage renders the evaluation request for the model.
func buildUserMessage(req *Request, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", req.Question)
	fmt.Fprintf(&b, "Correct answer: %s\n", req.CorrectAnswer)
	fmt.Fprintf(&b, "Student's answer: %s\n", req.StudentAnswer)
	fmt.Fprintf(&b, "Output language: %s.\n", languageName(language))
	return b.String()
}

func languageName(tag string) string {
	switch tag {
	case "hi":
		return "Hindi"
	case "en", "":
		return "English"
	default:
		return tag
	}
}
