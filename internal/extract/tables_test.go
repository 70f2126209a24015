package extract

import "testing"

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables()
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if len(tables.LineCorrections) == 0 {
		t.Error("no line corrections loaded")
	}
	if len(tables.NameCorrections) == 0 {
		t.Error("no name corrections loaded")
	}
	if len(tables.SkipPatterns) == 0 {
		t.Error("no skip patterns loaded")
	}
	if len(tables.ProductIndicators) == 0 {
		t.Error("no product indicators loaded")
	}
}

func TestValidateTablesRejectsMissingSections(t *testing.T) {
	if err := validateTables([]byte(`{}`)); err == nil {
		t.Error("empty document passed validation")
	}
	if err := validateTables([]byte(`{"line_corrections": []}`)); err == nil {
		t.Error("document missing sections passed validation")
	}
}

func TestApplyCorrectionsCaseInsensitive(t *testing.T) {
	tables := MustLoadTables()

	tests := []struct {
		in   string
		want string
	}{
		{"Bananas 6 IBS $3.98", "Bananas 6 lbs $3.98"},
		{"Sugar 2 1b", "Sugar 2 lb"},
		{"Juice 1 GA1", "Juice 1 gal"},
		{"Eggs $ 450", "Eggs $4.50"},
	}
	for _, tc := range tests {
		if got := applyCorrections(tc.in, tables.LineCorrections); got != tc.want {
			t.Errorf("applyCorrections(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
