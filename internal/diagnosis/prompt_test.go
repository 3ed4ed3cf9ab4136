package diagnosis

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt_EmbedsWhitelist(t *testing.T) {
	cands := fractionCandidates(t, "frac-invert", "frac-add-denominators")
	prompt := buildSystemPrompt("en", cands)

	for _, id := range []string{"frac-invert", "frac-add-denominators"} {
		if !strings.Contains(prompt, id) {
			t.Errorf("prompt missing candidate id %q", id)
		}
	}
}

func TestBuildSystemPrompt_LanguageContract(t *testing.T) {
	cands := fractionCandidates(t, "frac-invert")
	prompt := buildSystemPrompt("hi", cands)

	if !strings.Contains(prompt, "Hindi") {
		t.Error("prompt should name the requested language")
	}
	if !strings.Contains(prompt, "Do NOT translate keys") {
		t.Error("prompt must forbid translating JSON keys")
	}
	if !strings.Contains(prompt, "Do NOT translate, invent, or alter ids") {
		t.Error("prompt must forbid altering ids")
	}
}

func TestBuildSystemPrompt_UnknownLanguagePassesThrough(t *testing.T) {
	cands := fractionCandidates(t, "frac-invert")
	prompt := buildSystemPrompt("ta", cands)
	if !strings.Contains(prompt, "Output language: ta.") {
		t.Error("unknown language tags should pass through verbatim")
	}
}

func TestBuildUserMessage(t *testing.T) {
	req := &Request{
		Question:           "What fraction of the circle is shaded?",
		CorrectAnswer:      "3/4",
		StudentAnswer:      "4/3",
		StudentExplanation: "three parts and four shaded",
		Topic:              "fractions",
	}
	msg := buildUserMessage(req)

	for _, want := range []string{"3/4", "4/3", "fractions", "three parts and four shaded"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestBuildUserMessage_OmitsEmptyExplanation(t *testing.T) {
	req := &Request{Question: "q", CorrectAnswer: "1", StudentAnswer: "2", Topic: "integers"}
	if strings.Contains(buildUserMessage(req), "explanation") {
		t.Error("empty explanation should be omitted")
	}
}

func TestBuildRepairMessage_QuotesViolationsAndWhitelist(t *testing.T) {
	cands := fractionCandidates(t, "frac-invert", "frac-add-denominators")
	violations := []Violation{
		{Path: "misconceptions", Message: "must contain exactly 3 entries, got 2"},
		{Path: "key_takeaway", Message: "must be non-empty"},
	}
	msg := buildRepairMessage(violations, cands)

	for _, want := range []string{"misconceptions", "exactly 3 entries", "key_takeaway", "frac-invert", "frac-add-denominators"} {
		if !strings.Contains(msg, want) {
			t.Errorf("repair message missing %q", want)
		}
	}
}

func TestBuildMalformedRepairMessage(t *testing.T) {
	cands := fractionCandidates(t, "frac-invert")
	msg := buildMalformedRepairMessage(cands)
	if !strings.Contains(msg, "not valid JSON") {
		t.Error("malformed repair message must say the response was not valid JSON")
	}
	if !strings.Contains(msg, "frac-invert") {
		t.Error("malformed repair message must restate the whitelist")
	}
}
