package evaluation

import (
	"fmt"
	"strconv"
	"strings"
)

// answersMatch compares a student answer against the correct answer using
// normalized forms. The answer type is inferred from the correct answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive for free text
// - Fractions: equivalent fractions match (e.g., "2/4" matches "1/2")
// - Decimals: trailing zeros are ignored (e.g., "3.50" matches "3.5")
// - Integers: leading zeros are ignored (e.g., "007" matches "7")
func answersMatch(student, correct string) bool {
	student = strings.TrimSpace(student)
	correct = strings.TrimSpace(correct)
	if student == "" {
		return false
	}

	ns, err1 := normalizeAnswer(student)
	nc, err2 := normalizeAnswer(correct)
	if err1 != nil || err2 != nil {
		return strings.EqualFold(student, correct)
	}
	return ns == nc
}

// normalizeAnswer reduces an answer string to a canonical form. Fractions
// are reduced to lowest terms with the sign on the numerator; numbers are
// reparsed and reformatted; anything else is lowercased.
func normalizeAnswer(answer string) (string, error) {
	answer = strings.TrimSpace(answer)

	if strings.Contains(answer, "/") {
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(abs(num), den)
		num /= g
		den /= g
		return fmt.Sprintf("%d/%d", num, den), nil
	}

	if n, err := strconv.ParseInt(answer, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	if f, err := strconv.ParseFloat(answer, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}

	return strings.ToLower(answer), nil
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
