package match

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Similarity scores how close a candidate is to a known ingredient name, in
// [0,1]. Exact case-insensitive match scores 1.0, substring containment in
// either direction 0.9, anything else a normalized edit-distance similarity.
func Similarity(candidate, name string) float64 {
	a := strings.ToLower(strings.TrimSpace(candidate))
	b := strings.ToLower(strings.TrimSpace(name))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}
	return levenshtein.Similarity(a, b, levenshtein.NewParams())
}
