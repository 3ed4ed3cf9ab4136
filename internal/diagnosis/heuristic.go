package diagnosis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fractionPattern matches a simple fraction: optional sign, digits, slash,
// optional sign, digits.
var fractionPattern = regexp.MustCompile(`^(-?\d+)\s*/\s*(-?\d+)$`)

// HeuristicMatch records a structural heuristic firing. The evidence text
// is reused when the override has to synthesize a ranked entry.
type HeuristicMatch struct {
	MisconceptionID string
	Evidence        string
}

// DetectFractionSwap checks whether the student inverted the correct
// fraction: student numerator equals correct denominator and student
// denominator equals correct numerator. Both answers must parse as
// fractions with non-zero denominators.
func DetectFractionSwap(studentAnswer, correctAnswer string) (HeuristicMatch, bool) {
	sn, sd, ok := parseFraction(studentAnswer)
	if !ok {
		return HeuristicMatch{}, false
	}
	cn, cd, ok := parseFraction(correctAnswer)
	if !ok {
		return HeuristicMatch{}, false
	}

	if sn == cd && sd == cn {
		return HeuristicMatch{
			Evidence: fmt.Sprintf("answered %q where the correct answer is %q: numerator and denominator are swapped", strings.TrimSpace(studentAnswer), strings.TrimSpace(correctAnswer)),
		}, true
	}
	return HeuristicMatch{}, false
}

// parseFraction parses "a/b" into its parts. Returns ok=false when the
// string is not a fraction or the denominator is zero.
func parseFraction(s string) (num, den int64, ok bool) {
	m := fractionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil || den == 0 {
		return 0, 0, false
	}
	return num, den, true
}
