package parsefields

import (
	"testing"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestParsePrice(t *testing.T) {
	p := NewParser(Config{})

	tests := []struct {
		name string
		line string
		want *float64
	}{
		{"standard dollars and cents", "Bananas (6 lbs) $3.98", fptr(3.98)},
		{"spaced dollar sign", "Chicken Breast $ 5.49", fptr(5.49)},
		{"single digit cents", "Milk $3.9", fptr(3.90)},
		{"missing decimal point", "Ground Beef $1299", fptr(12.99)},
		{"missing decimal point short", "Bananas $398", fptr(3.98)},
		{"round amount stays round", "Gift Card $1000", nil},
		{"space as decimal point", "Milk 3 98", fptr(3.98)},
		{"comma as decimal point", "Eggs 3,98", fptr(3.98)},
		{"trailing bare number", "Apples 4.50", fptr(4.50)},
		{"no price", "Organic Spinach", nil},
		{"below minimum", "Coupon $0.00", nil},
		{"above maximum", "Catering Order $8500.00", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.line).Price
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("Parse(%q).Price = %v, want %v", tc.line, fmtPtr(got), fmtPtr(tc.want))
			}
			if got != nil && *got != *tc.want {
				t.Errorf("Parse(%q).Price = %v, want %v", tc.line, *got, *tc.want)
			}
		})
	}
}

func TestParseQuantityUnit(t *testing.T) {
	p := NewParser(Config{})

	tests := []struct {
		name     string
		line     string
		wantQty  *float64
		wantUnit *string
	}{
		{"parenthesized quantity", "Bananas (6 lbs) $3.98", fptr(6), sptr("lb")},
		{"multiplier form", "Yogurt (2 x 4 oz) $2.50", fptr(8), sptr("oz")},
		{"bare quantity and unit", "Chicken 2 lbs $8.99", fptr(2), sptr("lb")},
		{"ocr digit confusion", "Rice (l0 lbs)", fptr(10), sptr("lb")},
		{"ocr unit misread", "Potatoes 5 ibs $4.99", fptr(5), sptr("lb")},
		{"fractional quantity", "Deli Ham 0.75 lb $6.20", fptr(0.75), sptr("lb")},
		{"count unit synonym", "Bagels (6 ct)", fptr(6), sptr("pcs")},
		{"no quantity", "Organic Spinach $2.99", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := p.Parse(tc.line)
			if (f.Quantity == nil) != (tc.wantQty == nil) {
				t.Fatalf("Parse(%q).Quantity = %v, want %v", tc.line, fmtPtr(f.Quantity), fmtPtr(tc.wantQty))
			}
			if f.Quantity != nil && *f.Quantity != *tc.wantQty {
				t.Errorf("Parse(%q).Quantity = %v, want %v", tc.line, *f.Quantity, *tc.wantQty)
			}
			gotUnit, wantUnit := "", ""
			if f.Unit != nil {
				gotUnit = *f.Unit
			}
			if tc.wantUnit != nil {
				wantUnit = *tc.wantUnit
			}
			if gotUnit != wantUnit {
				t.Errorf("Parse(%q).Unit = %q, want %q", tc.line, gotUnit, wantUnit)
			}
		})
	}
}

func TestParseIndependentFields(t *testing.T) {
	p := NewParser(Config{})

	// A price failure must not affect quantity extraction and vice versa.
	f := p.Parse("Flour (5 lbs)")
	if f.Price != nil {
		t.Errorf("Price = %v, want nil", *f.Price)
	}
	if f.Quantity == nil || *f.Quantity != 5 {
		t.Errorf("Quantity = %v, want 5", fmtPtr(f.Quantity))
	}

	f = p.Parse("Mystery Item $7.25")
	if f.Price == nil || *f.Price != 7.25 {
		t.Errorf("Price = %v, want 7.25", fmtPtr(f.Price))
	}
	if f.Quantity != nil {
		t.Errorf("Quantity = %v, want nil", *f.Quantity)
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"lbs", "lb"},
		{"LB.", "lb"},
		{"ibs", "lb"},
		{"1b", "lb"},
		{"0z", "oz"},
		{"ga1", "gal"},
		{"ea", "pcs"},
		{"dozen", "doz"},
		{"d0z", "doz"},
		{"bunch", "bunch"}, // unknown passes through
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeUnit(tc.raw); got != tc.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func fmtPtr(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
