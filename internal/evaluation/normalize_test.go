package evaluation

import "testing"

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		name    string
		student string
		correct string
		want    bool
	}{
		{"exact integer", "7", "7", true},
		{"leading zeros", "007", "7", true},
		{"integer mismatch", "8", "7", false},
		{"trailing zeros decimal", "3.50", "3.5", true},
		{"decimal vs integer", "7.0", "7", true},
		{"equivalent fractions", "2/4", "1/2", true},
		{"sign on denominator", "1/-2", "-1/2", true},
		{"fraction mismatch", "3/4", "4/3", false},
		{"whitespace trimmed", "  1/2 ", "1/2", true},
		{"case-insensitive text", "Four", "four", true},
		{"empty student answer", "", "7", false},
		{"zero denominator falls back to text", "1/0", "1/0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := answersMatch(tt.student, tt.correct); got != tt.want {
				t.Errorf("answersMatch(%q, %q) = %v, want %v", tt.student, tt.correct, got, tt.want)
			}
		})
	}
}

func TestNormalizeAnswer_Fractions(t *testing.T) {
	got, err := normalizeAnswer("-4/-8")
	if err != nil {
		t.Fatalf("normalizeAnswer failed: %v", err)
	}
	if got != "1/2" {
		t.Errorf("normalized = %q, want 1/2", got)
	}
}
