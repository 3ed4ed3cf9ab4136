package diagnosis

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathmentor/internal/catalog"
)

// languageNames maps supported language tags to the name used in prompts.
// Unknown tags fall through to the tag itself so new languages degrade
// gracefully instead of failing.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
}

func languageName(tag string) string {
	if name, ok := languageNames[tag]; ok {
		return name
	}
	return tag
}

// buildSystemPrompt produces the system instruction for one language.
// The contract it embeds is the heart of the pipeline: JSON keys stay
// fixed English names, misconception ids come from the enumerated
// whitelist, and every other string value is written in the requested
// language.
func buildSystemPrompt(lang string, cands []*catalog.Misconception) string {
	var b strings.Builder

	b.WriteString("You are an expert math education diagnostician for a tutoring app. A student answered a math question incorrectly. Rank the three most likely misconceptions behind the error and build a short lesson around them.\n\n")

	b.WriteString("Allowed misconception ids (use ONLY these, exactly as written):\n")
	for _, c := range cands {
		b.WriteString(fmt.Sprintf("- %s: %s\n", c.ID, c.Description))
	}

	b.WriteString(fmt.Sprintf(`
Respond with a single JSON object with these exact keys:
- "misconceptions": array of EXACTLY 3 objects, ordered from most to least likely, each with keys "id", "name", "confidence" (number between 0 and 1), "evidence" (a short quote from the student's work, or "none provided"), "diagnosis", "remediation".
- "follow_up_question": object with keys "prompt", "correct_answer", "rationale".
- "teach_back_prompt": string inviting the student to explain the idea back.
- "key_takeaway": string of at most 100 characters.

Output language: %s.

Rules:
- JSON keys are structural and MUST stay exactly as listed above. Do NOT translate keys.
- "id" values MUST come from the allowed list above. Do NOT translate, invent, or alter ids.
- Every other string value MUST be written in %s.
- If fewer than 3 misconceptions plausibly apply, still return 3 entries and give the implausible ones low confidence.
- Return only the JSON object, no prose around it.`, languageName(lang), languageName(lang)))

	return b.String()
}

// buildUserMessage renders the student's attempt for the model.
func buildUserMessage(req *Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", req.Topic))
	b.WriteString(fmt.Sprintf("Question: %s\n", req.Question))
	b.WriteString(fmt.Sprintf("Correct answer: %s\n", req.CorrectAnswer))
	b.WriteString(fmt.Sprintf("Student's answer: %s\n", req.StudentAnswer))
	if req.StudentExplanation != "" {
		b.WriteString(fmt.Sprintf("Student's explanation: %s\n", req.StudentExplanation))
	}

	return b.String()
}

// buildRepairMessage quotes the violations from the previous response back
// to the model and restates the id whitelist.
func buildRepairMessage(violations []Violation, cands []*catalog.Misconception) string {
	var b strings.Builder

	b.WriteString("Your previous response violated the required format. Problems found:\n")
	for _, v := range violations {
		b.WriteString(fmt.Sprintf("- %s: %s\n", v.Path, v.Message))
	}

	b.WriteString("\nAllowed misconception ids (unchanged):\n")
	for _, c := range cands {
		b.WriteString(fmt.Sprintf("- %s\n", c.ID))
	}

	b.WriteString("\nSend the corrected JSON object again. Fix every problem listed, keep all JSON keys in English, and change nothing else.")

	return b.String()
}

// buildMalformedRepairMessage is used when the previous response was not
// parseable JSON at all, so there are no violations to quote.
func buildMalformedRepairMessage(cands []*catalog.Misconception) string {
	return buildRepairMessage([]Violation{
		{Path: "$", Message: "response was not valid JSON"},
	}, cands)
}
