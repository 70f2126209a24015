package parsefields

import (
	"regexp"
	"strconv"
	"strings"
)

// Fields is the structured data recovered from one candidate line. Unmatched
// fields stay nil; parsing never fails on malformed input.
type Fields struct {
	Quantity *float64
	Unit     *string
	Price    *float64
}

// Config bounds price parsing. Values outside the sane range are treated as
// no match and parsing continues to the next pattern.
type Config struct {
	PriceMin float64
	PriceMax float64
}

// Parser extracts quantity, unit and price from candidate receipt lines.
type Parser struct {
	cfg Config
}

func NewParser(cfg Config) *Parser {
	if cfg.PriceMin <= 0 {
		cfg.PriceMin = 0.01
	}
	if cfg.PriceMax <= cfg.PriceMin {
		cfg.PriceMax = 999.99
	}
	return &Parser{cfg: cfg}
}

// digits that Tesseract commonly confuses with letters. Applied to captured
// numeric strings before parsing.
var digitConfusion = strings.NewReplacer("O", "0", "o", "0", "I", "1", "l", "1")

// num matches a numeric run that may contain OCR digit confusions.
const num = `[\dOIl]+(?:\.[\dOIl]+)?`

// Price patterns, most to least specific. The first in-range value wins.
var pricePatterns = []*regexp.Regexp{
	// standard $D.DD
	regexp.MustCompile(`\$\s*(\d{1,3})\.(\d{2})\b`),
	// single-digit cents: $3.9 -> 3.90
	regexp.MustCompile(`\$\s*(\d{1,3})\.(\d)\b`),
	// OCR-concatenated digit run: $1299 -> 12.99, $398 -> 3.98
	regexp.MustCompile(`\$\s*(\d{3,5})(?:\s|$)`),
	// space-separated dollars and cents: 3 98 at end of line
	regexp.MustCompile(`\$?\s*(\d{1,3})\s+(\d{2})\s*$`),
	// comma as decimal separator: 3,98
	regexp.MustCompile(`\$?\s*(\d{1,3}),(\d{2})\b`),
	// trailing bare number
	regexp.MustCompile(`(?:^|[^\d.$])(\d{1,3}(?:\.\d{1,2})?)\s*$`),
}

var quantityPatterns = []*regexp.Regexp{
	// (N x M unit): quantity = N * M
	regexp.MustCompile(`\(\s*(` + num + `)\s*[xX]\s*(` + num + `)\s*([A-Za-z]+\.?)?\s*\)`),
	// (N unit)
	regexp.MustCompile(`\(\s*(` + num + `)\s*([A-Za-z]+\.?)?\s*\)`),
	// bare N unit
	regexp.MustCompile(`\b(` + num + `)\s*(lbs?|ibs?|1bs?|oz|0z|kg|g|gal|ga1|l|ml|pcs?|ct|doz|dozen|bag|each|ea)\b`),
}

// Parse extracts all three fields from a line. Each extraction is
// independent; one failing leaves the others intact.
func (p *Parser) Parse(line string) Fields {
	f := Fields{}
	f.Price = p.parsePrice(line)
	f.Quantity, f.Unit = p.parseQuantityUnit(line)
	return f
}

func (p *Parser) parsePrice(line string) *float64 {
	for i, re := range pricePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var value float64
		var err error
		switch {
		case i == 2: // concatenated digit run: split last two digits as cents
			run := m[1]
			// A trailing "00" reads as a genuine round dollar amount
			// ($1000 is a thousand dollars, not $10.00), so the missing
			// decimal point interpretation does not apply.
			if strings.HasSuffix(run, "00") {
				continue
			}
			dollars, derr := strconv.ParseFloat(run[:len(run)-2], 64)
			cents, cerr := strconv.ParseFloat(run[len(run)-2:], 64)
			if derr != nil || cerr != nil {
				continue
			}
			value = dollars + cents/100
		case len(m) == 3: // dollars + cents groups
			cents := m[2]
			if len(cents) == 1 {
				cents += "0"
			}
			value, err = strconv.ParseFloat(m[1]+"."+cents, 64)
			if err != nil {
				continue
			}
		default:
			value, err = strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
		}

		if value < p.cfg.PriceMin || value > p.cfg.PriceMax {
			continue
		}
		return &value
	}
	return nil
}

func (p *Parser) parseQuantityUnit(line string) (*float64, *string) {
	for i, re := range quantityPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		qty, ok := parseOCRNumber(m[1])
		if !ok {
			continue
		}
		var rawUnit string
		if i == 0 { // multiplier form: (N x M unit)
			mult, ok := parseOCRNumber(m[2])
			if !ok {
				continue
			}
			qty *= mult
			rawUnit = m[3]
		} else {
			rawUnit = m[2]
		}

		var unit *string
		if u := NormalizeUnit(rawUnit); u != "" {
			unit = &u
		}
		return &qty, unit
	}
	return nil, nil
}

// parseOCRNumber parses a numeric string after correcting common OCR
// letter-for-digit confusions.
func parseOCRNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(digitConfusion.Replace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
