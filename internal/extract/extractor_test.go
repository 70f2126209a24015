package extract

import (
	"strings"
	"testing"
)

const sampleReceipt = `FRESH MART #204
123 Main Street
03/15/2024 14:32
----------------
Bananas (6 lbs) $3.98
CHIKEN BREAST $5.49
Organic Spinach $2.99
Milk 2% $2.49
SUBTOTAL $14.95
TAX $1.20
TOTAL $16.15
CASH $20.00
Thank you for shopping!`

func TestExtractSampleReceipt(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	got := e.Extract(sampleReceipt)

	wantNames := []string{"Bananas", "Chicken Breast", "Organic Spinach", "Milk 2"}
	if len(got) != len(wantNames) {
		var lines []string
		for _, c := range got {
			lines = append(lines, c.Name)
		}
		t.Fatalf("Extract returned %d candidates %v, want %d", len(got), lines, len(wantNames))
	}
	for i, want := range wantNames {
		if got[i].Name != want {
			t.Errorf("candidate %d name = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestCandidateLinesSkipsNonProducts(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	skipped := []string{
		"SUBTOTAL $25.00",
		"TOTAL $27.10",
		"TAX $2.10",
		"Thank you for shopping!",
		"Have a great day",
		"STORE #1234",
		"123 Main Street",
		"----------------",
		"03/15/2024",
		"$3.98",
		"ITEMS: 7",
		"VISA ************1234",
	}
	for _, line := range skipped {
		if got := e.CandidateLines(line); len(got) != 0 {
			t.Errorf("CandidateLines(%q) = %v, want none", line, got)
		}
	}

	kept := []string{
		"Bananas (6 lbs) $3.98",
		"Organic Spinach $2.99",
		"Yogurt 2 x $1.25",
		"Deli Ham @ $6.99/lb",
	}
	for _, line := range kept {
		if got := e.CandidateLines(line); len(got) != 1 {
			t.Errorf("CandidateLines(%q) = %v, want one line", line, got)
		}
	}
}

func TestLineCorrectionsApplied(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	// A missing decimal point is repaired before classification so that the
	// downstream field parser sees a normal price.
	got := e.CandidateLines("Bananas $398")
	if len(got) != 1 {
		t.Fatalf("CandidateLines = %v, want one line", got)
	}
	if got[0] != "Bananas $3.98" {
		t.Errorf("corrected line = %q, want %q", got[0], "Bananas $3.98")
	}

	got = e.CandidateLines("Potatoes (5 ibs) $4.99")
	if len(got) != 1 {
		t.Fatalf("CandidateLines = %v, want one line", got)
	}
	if !strings.Contains(got[0], "lbs") {
		t.Errorf("corrected line = %q, want unit rewritten to lbs", got[0])
	}
}

func TestCleanNames(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	tests := []struct {
		line string
		want string
	}{
		{"Bananas (6 lbs) $3.98", "Bananas"},
		{"CHIKEN BREAST $5.49", "Chicken Breast"},
		{"Tomatoe Sauce $1.29", "Tomato Sauce"},
		{"Deli Ham @ $6.99/lb", "Deli Ham"},
		{"Yogurt 2 x $1.25", "Yogurt"},
		{"$2.99", ""}, // nothing left after stripping
	}
	for _, tc := range tests {
		if got := e.Clean(tc.line); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

type staticNames []string

func (s staticNames) Names() []string { return s }

func TestFoodTokensFromNameSource(t *testing.T) {
	// With a live dictionary, a line starting with a known ingredient word is
	// accepted even without any price or quantity markers.
	e := NewExtractor(nil, staticNames{"Dragonfruit", "Star Anise"}, nil)
	if got := e.CandidateLines("Dragonfruit"); len(got) != 1 {
		t.Errorf("CandidateLines with dictionary = %v, want one line", got)
	}

	// The built-in fallback does not know this word.
	fallback := NewExtractor(nil, nil, nil)
	if got := fallback.CandidateLines("Dragonfruit"); len(got) != 0 {
		t.Errorf("CandidateLines without dictionary = %v, want none", got)
	}
}

func TestRejectedLineProducesNoPartialItem(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	// The numeric-only line classifies as a bare price and must not surface
	// as a candidate even though it carries parseable fields.
	got := e.Extract("$12.99\n(3 lbs)\n")
	if len(got) != 0 {
		t.Errorf("Extract = %v, want none", got)
	}
}
