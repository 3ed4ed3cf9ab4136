package catalog

// followUpBank holds one static follow-up question per topic, used by the
// deterministic fallback when no model-generated question is available.
var followUpBank = map[string]FollowUpQuestion{
	"fractions": {
		Prompt:        "Shade 3 out of 4 equal parts of a rectangle. What fraction is shaded?",
		CorrectAnswer: "3/4",
		Rationale:     "3 shaded parts out of 4 equal parts is written with the count on top and the total on the bottom: 3/4.",
	},
	"decimals": {
		Prompt:        "Which is larger: 0.5 or 0.35?",
		CorrectAnswer: "0.5",
		Rationale:     "Pad to the same length: 0.50 vs 0.35. Fifty hundredths is more than thirty-five hundredths.",
	},
	"place-value": {
		Prompt:        "What is the value of the digit 7 in 273?",
		CorrectAnswer: "70",
		Rationale:     "The 7 sits in the tens place, so it is worth 7 tens, which is 70.",
	},
	"integers": {
		Prompt:        "What is 36 + 47?",
		CorrectAnswer: "83",
		Rationale:     "6 + 7 = 13: write 3, carry 1. Then 3 + 4 + 1 = 8. The answer is 83.",
	},
}

var defaultFollowUp = FollowUpQuestion{
	Prompt:        "Explain in your own words what mistake you think you made, then try the problem again.",
	CorrectAnswer: "none provided",
	Rationale:     "Re-working a missed problem after naming the mistake is the fastest way to fix it.",
}

// FollowUp returns the static follow-up question for a topic.
func FollowUp(topic string) FollowUpQuestion {
	if q, ok := followUpBank[topic]; ok {
		return q
	}
	return defaultFollowUp
}

var teachBackBank = map[string]string{
	"fractions":   "Pretend I'm a younger student. Can you teach me what the top and bottom numbers of a fraction mean?",
	"decimals":    "Pretend I'm a younger student. Can you teach me how to decide which of two decimals is bigger?",
	"place-value": "Pretend I'm a younger student. Can you teach me what each digit in a three-digit number is worth?",
	"integers":    "Pretend I'm a younger student. Can you teach me how carrying works when adding big numbers?",
}

// TeachBack returns the static teach-back prompt for a topic.
func TeachBack(topic string) string {
	if p, ok := teachBackBank[topic]; ok {
		return p
	}
	return "Pretend I'm a younger student. Can you teach me how you would solve this problem step by step?"
}

// Key takeaways are bounded to 100 characters by the response contract.
var takeawayBank = map[string]string{
	"fractions":   "The bottom number counts the equal parts; the top number counts how many you have.",
	"decimals":    "Line up the decimal points before comparing or adding decimals.",
	"place-value": "Each place is worth ten times the place to its right.",
	"integers":    "Work column by column and carry or borrow when a column overflows.",
}

// KeyTakeaway returns the static key takeaway for a topic.
func KeyTakeaway(topic string) string {
	if s, ok := takeawayBank[topic]; ok {
		return s
	}
	return "Slow down, check each step, and make sure the answer makes sense."
}
