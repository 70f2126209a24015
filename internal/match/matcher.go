package match

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

// Suggestion is one ranked ingredient match for a detected receipt item.
type Suggestion struct {
	IngredientID   uuid.UUID
	IngredientName string
	Confidence     float64 // 0–100
	DetectedText   string
}

// SearchHit is one row from the database search path.
type SearchHit struct {
	ID   uuid.UUID
	Name string
}

// SearchService is the database-backed ingredient search. A nil service
// degrades the matcher to the cached-list-only path.
type SearchService interface {
	SearchByName(ctx context.Context, query string, limit int) ([]SearchHit, error)
}

var (
	reMatchParens  = regexp.MustCompile(`\([^)]*\)`)
	reMatchPrice   = regexp.MustCompile(`\$?\d+(?:[.,]\d{1,2})?`)
	reMatchNonWord = regexp.MustCompile(`[^a-z0-9\s'-]`)
	reMatchMultiWS = regexp.MustCompile(`\s+`)
)

// Matcher ranks known ingredient names against detected item text. It never
// returns an error: lookup failures on either sourcing path are logged and
// treated as zero hits from that path.
type Matcher struct {
	search SearchService
	cache  *NameCache
	cfg    common.MatchConfig
	logger *slog.Logger
}

func NewMatcher(search SearchService, cache *NameCache, cfg common.MatchConfig, logger *slog.Logger) *Matcher {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 3
	}
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = 0.3
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{search: search, cache: cache, cfg: cfg, logger: logger}
}

// Suggest returns at most MaxSuggestions ranked matches for the candidate
// text, descending by confidence. Entries below the similarity threshold are
// excluded. An empty normalized candidate yields an empty list.
func (m *Matcher) Suggest(ctx context.Context, candidate string) []Suggestion {
	query := normalizeCandidate(candidate)
	if query == "" {
		return nil
	}

	pool := m.searchPool(ctx, query, candidate)

	// Fill remaining slots from the local cached list when the database path
	// yielded too few hits or was unavailable.
	if len(pool) < m.cfg.MaxSuggestions && m.cache != nil {
		seen := make(map[string]struct{}, len(pool))
		for _, s := range pool {
			seen[strings.ToLower(s.IngredientName)] = struct{}{}
		}
		for _, e := range m.cache.Entries() {
			if _, dup := seen[strings.ToLower(e.Name)]; dup {
				continue
			}
			score := Similarity(query, e.Name)
			if score < m.cfg.SimilarityThreshold {
				continue
			}
			pool = append(pool, Suggestion{
				IngredientID:   e.ID,
				IngredientName: e.Name,
				Confidence:     score * 100,
				DetectedText:   candidate,
			})
		}
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Confidence > pool[j].Confidence })
	if len(pool) > m.cfg.MaxSuggestions {
		pool = pool[:m.cfg.MaxSuggestions]
	}
	return pool
}

func (m *Matcher) searchPool(ctx context.Context, query, candidate string) []Suggestion {
	if m.search == nil {
		return nil
	}
	hits, err := m.search.SearchByName(ctx, query, m.cfg.SearchLimit)
	if err != nil {
		m.logger.Warn("ingredient search failed, falling back to cached names", "error", err)
		return nil
	}
	var pool []Suggestion
	for _, h := range hits {
		score := Similarity(query, h.Name)
		if score < m.cfg.SimilarityThreshold {
			continue
		}
		pool = append(pool, Suggestion{
			IngredientID:   h.ID,
			IngredientName: h.Name,
			Confidence:     score * 100,
			DetectedText:   candidate,
		})
	}
	return pool
}

// normalizeCandidate strips parenthetical content, price fragments and
// punctuation, lowercases, and collapses whitespace.
func normalizeCandidate(s string) string {
	s = strings.ToLower(s)
	s = reMatchParens.ReplaceAllString(s, " ")
	s = reMatchPrice.ReplaceAllString(s, " ")
	s = reMatchNonWord.ReplaceAllString(s, " ")
	s = reMatchMultiWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
