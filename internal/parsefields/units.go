package parsefields

import "strings"

// unitSynonyms normalizes unit spellings and their common OCR misreadings to
// canonical short forms. Unknown units pass through lower-cased unchanged.
var unitSynonyms = map[string]string{
	// weight
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"ib": "lb", "1b": "lb", "11b": "lb", "its": "lb", "ibs": "lb", "1bs": "lb",
	"oz": "oz", "ounce": "oz", "ounces": "oz", "0z": "oz",
	"kg": "kg", "kilo": "kg", "kilos": "kg", "kilogram": "kg", "kilograms": "kg",
	"g": "g", "gram": "g", "grams": "g",
	// volume
	"gal": "gal", "gallon": "gal", "gallons": "gal", "ga1": "gal",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"ml": "ml",
	// count
	"pc": "pcs", "pcs": "pcs", "piece": "pcs", "pieces": "pcs",
	"ct": "pcs", "count": "pcs", "each": "pcs", "ea": "pcs",
	"doz": "doz", "dozen": "doz", "d0z": "doz",
	"bag": "bag", "bags": "bag",
}

// NormalizeUnit maps a raw unit string to its canonical form,
// case-insensitively. Trailing periods ("lb.") are ignored.
func NormalizeUnit(raw string) string {
	u := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(raw), "."))
	if u == "" {
		return ""
	}
	if canonical, ok := unitSynonyms[u]; ok {
		return canonical
	}
	return u
}
