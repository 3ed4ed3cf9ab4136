// Package langdetect classifies the language a model response was actually
// written in, independent of the language it was asked for. It is used for
// monitoring the language contract, not for enforcing it.
package langdetect

import (
	"fmt"
	"strings"
	"unicode"
)

// Language is a detected language category.
type Language string

const (
	// English is the default classification.
	English Language = "en"
	// Hindi means Devanagari-script Hindi.
	Hindi Language = "hi"
	// RomanizedHindi means Hindi written in Latin script.
	RomanizedHindi Language = "hi-Latn"
	// Mixed means a blend of English and romanized Hindi.
	Mixed Language = "mixed"
	// Unknown means there was no text to classify.
	Unknown Language = "unknown"
)

// Result is one classification with its supporting signal.
type Result struct {
	Tag        Language
	Confidence float64
	Label      string
	Rationale  string
}

// Detection thresholds for romanized-Hindi marker density.
const (
	strongMinMarkers = 3
	strongMinRatio   = 0.15
	mixedMinMarkers  = 2
	mixedMinRatio    = 0.08
)

var labels = map[Language]string{
	English:        "English",
	Hindi:          "Hindi (Devanagari)",
	RomanizedHindi: "Hindi (romanized)",
	Mixed:          "Mixed English and romanized Hindi",
	Unknown:        "Unknown",
}

// markerWords are common Hindi function and content words in Latin script.
// Words that are also ordinary English words ("the", "to", "try") are
// deliberately excluded so English sentences never accumulate markers.
var markerWords = map[string]bool{
	"hai": true, "hain": true, "tha": true, "thi": true,
	"nahi": true, "nahin": true, "mat": true,
	"acha": true, "accha": true, "theek": true, "thik": true,
	"sahi": true, "galat": true, "bilkul": true, "shabash": true,
	"lekin": true, "aur": true, "phir": true, "abhi": true,
	"kya": true, "kyun": true, "kaise": true, "kaun": true, "kahan": true,
	"yeh": true, "woh": true, "iska": true, "uska": true, "apna": true,
	"karo": true, "karna": true, "karte": true, "kiya": true,
	"dekho": true, "socho": true, "samjho": true, "samajh": true,
	"mein": true, "bahut": true, "bohot": true, "thoda": true,
	"ganit": true, "sawal": true, "jawab": true, "uttar": true,
}

// DetectFromResponse classifies the language of a decoded JSON response.
// Only string values are examined; field names are never inspected, since
// JSON keys stay in English regardless of the payload language.
func DetectFromResponse(doc any) Result {
	var values []string
	collectStrings(doc, &values)
	return DetectText(strings.Join(values, " "))
}

// DetectText classifies a piece of free text.
func DetectText(text string) Result {
	if containsDevanagari(text) {
		return Result{
			Tag:        Hindi,
			Confidence: 0.99,
			Label:      labels[Hindi],
			Rationale:  "text contains Devanagari script",
		}
	}

	words := tokenize(text)
	if len(words) == 0 {
		return Result{
			Tag:        Unknown,
			Confidence: 0,
			Label:      labels[Unknown],
			Rationale:  "no words to classify",
		}
	}

	markers := 0
	for _, w := range words {
		if markerWords[w] {
			markers++
		}
	}
	ratio := float64(markers) / float64(len(words))

	switch {
	case markers >= strongMinMarkers && ratio >= strongMinRatio:
		return Result{
			Tag:        RomanizedHindi,
			Confidence: min(0.5+ratio, 0.95),
			Label:      labels[RomanizedHindi],
			Rationale:  fmt.Sprintf("%d of %d words are Hindi marker words", markers, len(words)),
		}
	case markers >= mixedMinMarkers && ratio >= mixedMinRatio:
		return Result{
			Tag:        Mixed,
			Confidence: 0.6,
			Label:      labels[Mixed],
			Rationale:  fmt.Sprintf("%d of %d words are Hindi marker words", markers, len(words)),
		}
	default:
		return Result{
			Tag:        English,
			Confidence: 0.9 - 0.2*float64(markers),
			Label:      labels[English],
			Rationale:  fmt.Sprintf("%d of %d words are Hindi marker words, below the mixed threshold", markers, len(words)),
		}
	}
}

// collectStrings walks a decoded JSON document appending every string
// value it finds. Map keys are skipped.
func collectStrings(v any, out *[]string) {
	switch t := v.(type) {
	case string:
		*out = append(*out, t)
	case map[string]any:
		for _, child := range t {
			collectStrings(child, out)
		}
	case []any:
		for _, child := range t {
			collectStrings(child, out)
		}
	}
}

// containsDevanagari reports whether any rune falls in the Devanagari or
// Devanagari Extended blocks.
func containsDevanagari(s string) bool {
	for _, r := range s {
		if (r >= 0x0900 && r <= 0x097F) || (r >= 0xA8E0 && r <= 0xA8FF) {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits text into letter runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
