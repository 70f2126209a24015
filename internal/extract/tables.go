package extract

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tables/corrections.json
var correctionsJSON []byte

//go:embed tables/corrections.schema.json
var correctionsSchemaJSON []byte

// Correction is one pattern→replacement substitution. Patterns are compiled
// case-insensitively.
type Correction struct {
	re          *regexp.Regexp
	replacement string
}

// Tables holds the data-driven pattern sets the extractor classifies with.
// They live in embedded JSON so they can be unit-tested exhaustively and
// extended without touching control flow.
type Tables struct {
	LineCorrections   []Correction
	NameCorrections   []Correction
	SkipPatterns      []*regexp.Regexp
	ProductIndicators []*regexp.Regexp
}

type tablesDoc struct {
	LineCorrections   []correctionDoc `json:"line_corrections"`
	NameCorrections   []correctionDoc `json:"name_corrections"`
	SkipPatterns      []string        `json:"skip_patterns"`
	ProductIndicators []string        `json:"product_indicators"`
}

type correctionDoc struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// LoadTables parses and validates the embedded tables. A malformed table is a
// programmer error, so the package-level default panics via MustLoadTables.
func LoadTables() (*Tables, error) {
	if err := validateTables(correctionsJSON); err != nil {
		return nil, fmt.Errorf("correction tables schema: %w", err)
	}

	var doc tablesDoc
	if err := json.Unmarshal(correctionsJSON, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal correction tables: %w", err)
	}

	t := &Tables{}
	var err error
	if t.LineCorrections, err = compileCorrections(doc.LineCorrections); err != nil {
		return nil, fmt.Errorf("line corrections: %w", err)
	}
	if t.NameCorrections, err = compileCorrections(doc.NameCorrections); err != nil {
		return nil, fmt.Errorf("name corrections: %w", err)
	}
	if t.SkipPatterns, err = compilePatterns(doc.SkipPatterns); err != nil {
		return nil, fmt.Errorf("skip patterns: %w", err)
	}
	if t.ProductIndicators, err = compilePatterns(doc.ProductIndicators); err != nil {
		return nil, fmt.Errorf("product indicators: %w", err)
	}
	return t, nil
}

// MustLoadTables is LoadTables for package initialization paths.
func MustLoadTables() *Tables {
	t, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return t
}

func validateTables(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("corrections.schema.json", bytes.NewReader(correctionsSchemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("corrections.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("tables do not match schema: %w", err)
	}
	return nil
}

func compileCorrections(docs []correctionDoc) ([]Correction, error) {
	out := make([]Correction, 0, len(docs))
	for _, d := range docs {
		re, err := regexp.Compile("(?i)" + d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", d.Pattern, err)
		}
		out = append(out, Correction{re: re, replacement: d.Replacement})
	}
	return out, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// applyCorrections runs the ordered substitution table over one line.
func applyCorrections(line string, corrections []Correction) string {
	for _, c := range corrections {
		line = c.re.ReplaceAllString(line, c.replacement)
	}
	return line
}
