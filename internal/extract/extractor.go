package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// NameSource supplies the known ingredient names used as the food-keyword
// dictionary. Implementations return an immutable snapshot; nil or an empty
// snapshot falls back to the built-in keyword list.
type NameSource interface {
	Names() []string
}

// builtinFoodKeywords is the fallback dictionary when no ingredient names are
// available. Deliberately small: common grocery staples only.
var builtinFoodKeywords = []string{
	"milk", "bread", "eggs", "egg", "cheese", "butter", "yogurt", "cream",
	"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna", "ham",
	"apple", "apples", "banana", "bananas", "orange", "oranges", "grapes",
	"tomato", "tomatoes", "potato", "potatoes", "onion", "onions", "garlic",
	"lettuce", "carrot", "carrots", "broccoli", "spinach", "pepper", "celery",
	"rice", "pasta", "cereal", "flour", "sugar", "salt", "oil", "beans",
	"juice", "coffee", "tea", "soda", "water",
}

var (
	reAlphaRun         = regexp.MustCompile(`[A-Za-z]{2,}`)
	reLettersThenPrice = regexp.MustCompile(`[A-Za-z]{2,}.*\$?\d+[.,]\d{2}`)
	reParenthetical    = regexp.MustCompile(`\([^)]*\)`)
	reWhitespace       = regexp.MustCompile(`\s+`)
	reNonNameChars     = regexp.MustCompile(`[^a-zA-Z0-9\s'-]`)
	reLeadingNonAlpha  = regexp.MustCompile(`^[^A-Za-z]+`)

	// Trailing fragments stripped from accepted lines: prices, unit prices,
	// multipliers, bare quantity-unit tails. Applied repeatedly until stable.
	reTrailingFragment = regexp.MustCompile(`(?i)\s*(?:` +
		`@\s*\$?\d+(?:[.,]\d{1,2})?(?:\s*/\s*[a-z]{1,5}\.?)?` +
		`|\d+\s*[x@]\s*\$?\d+(?:[.,]\d{1,2})?` +
		`|\$?\d+[.,]\d{1,2}` +
		`|\d+(?:\.\d+)?\s*(?:lbs?|oz|kg|g|gal|l|ml|pcs?|ct|doz|each|ea)\.?` +
		`|\$?\d+` +
		`)\s*$`)
)

// Extractor turns raw multi-line OCR text into cleaned candidate product
// names. Lines that fail every acceptance criterion are silently dropped; a
// rejected line never produces a partial item.
type Extractor struct {
	tables *Tables
	names  NameSource
	logger *slog.Logger
}

func NewExtractor(tables *Tables, names NameSource, logger *slog.Logger) *Extractor {
	if tables == nil {
		tables = MustLoadTables()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{tables: tables, names: names, logger: logger}
}

// Candidate pairs an accepted, corrected source line with its cleaned
// product name. The line feeds field parsing; the name feeds matching.
type Candidate struct {
	Line string
	Name string
}

// Extract runs the two-phase extraction over a whole OCR text block:
// OCR-error correction per line, then classification, then name cleaning.
// Lines that survive classification but fail name cleaning are dropped.
func (e *Extractor) Extract(rawText string) []Candidate {
	foods := e.foodTokens()
	var out []Candidate
	for _, line := range e.candidateLines(rawText, foods) {
		name := e.clean(line, foods)
		if name == "" {
			continue
		}
		out = append(out, Candidate{Line: line, Name: name})
	}
	e.logger.Debug("candidates extracted", "total", len(out))
	return out
}

// CandidateLines returns the corrected lines that classified as probable
// product lines, before name cleaning.
func (e *Extractor) CandidateLines(rawText string) []string {
	return e.candidateLines(rawText, e.foodTokens())
}

func (e *Extractor) candidateLines(rawText string, foods map[string]struct{}) []string {
	var accepted []string
	for _, raw := range strings.Split(rawText, "\n") {
		line := applyCorrections(raw, e.tables.LineCorrections)
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		if e.matchesSkip(line) {
			continue
		}
		if !reAlphaRun.MatchString(line) {
			continue
		}
		if !e.looksLikeProduct(line, foods) {
			continue
		}
		accepted = append(accepted, line)
	}
	return accepted
}

// Clean derives the final product name from an accepted candidate line.
// Returns "" when the cleaned text fails the residual acceptance criteria.
func (e *Extractor) Clean(line string) string {
	foods := e.foodTokens()
	return e.clean(line, foods)
}

func (e *Extractor) matchesSkip(line string) bool {
	for _, re := range e.tables.SkipPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func (e *Extractor) looksLikeProduct(line string, foods map[string]struct{}) bool {
	for _, re := range e.tables.ProductIndicators {
		if re.MatchString(line) {
			return true
		}
	}
	if reLettersThenPrice.MatchString(line) {
		return true
	}
	return e.startsWithFoodToken(line, foods)
}

func (e *Extractor) clean(line string, foods map[string]struct{}) string {
	startedWithFood := e.startsWithFoodToken(line, foods)

	text := reParenthetical.ReplaceAllString(line, " ")
	for {
		stripped := reTrailingFragment.ReplaceAllString(text, "")
		if stripped == text {
			break
		}
		text = stripped
	}
	text = reNonNameChars.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(strings.TrimSpace(text), " ")
	text = applyCorrections(text, e.tables.NameCorrections)
	if text == "" || !reAlphaRun.MatchString(text) {
		return ""
	}

	words := strings.Fields(text)
	switch {
	case e.hasFoodOverlap(words, foods):
	case len(words) <= 5:
	case startedWithFood:
	case beginsCapitalized(text):
	default:
		return ""
	}
	return titleCase(text)
}

// foodTokens builds the lookup set from the current name snapshot, falling
// back to the built-in keywords when no dictionary is available.
func (e *Extractor) foodTokens() map[string]struct{} {
	tokens := make(map[string]struct{})
	var names []string
	if e.names != nil {
		names = e.names.Names()
	}
	if len(names) == 0 {
		names = builtinFoodKeywords
	}
	for _, name := range names {
		for _, w := range strings.Fields(strings.ToLower(name)) {
			if len(w) >= 3 {
				tokens[w] = struct{}{}
			}
		}
	}
	return tokens
}

func (e *Extractor) startsWithFoodToken(line string, foods map[string]struct{}) bool {
	first := reLeadingNonAlpha.ReplaceAllString(line, "")
	if i := strings.IndexFunc(first, func(r rune) bool { return !unicode.IsLetter(r) }); i > 0 {
		first = first[:i]
	}
	if len(first) < 3 {
		return false
	}
	_, ok := foods[strings.ToLower(first)]
	return ok
}

func (e *Extractor) hasFoodOverlap(words []string, foods map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := foods[strings.ToLower(w)]; ok {
			return true
		}
	}
	return false
}

func beginsCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
