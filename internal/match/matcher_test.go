package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

type staticLister struct {
	entries []Entry
	err     error
	calls   int
}

func (s *staticLister) ListIngredients(context.Context) ([]Entry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

type staticSearch struct {
	hits []SearchHit
	err  error
}

func (s *staticSearch) SearchByName(context.Context, string, int) ([]SearchHit, error) {
	return s.hits, s.err
}

func entriesOf(names ...string) []Entry {
	out := make([]Entry, len(names))
	for i, n := range names {
		out[i] = Entry{ID: uuid.New(), Name: n}
	}
	return out
}

func cacheOf(t *testing.T, names ...string) *NameCache {
	t.Helper()
	c := NewNameCache(&staticLister{entries: entriesOf(names...)}, time.Hour, nil)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return c
}

func testMatchConfig() common.MatchConfig {
	return common.MatchConfig{
		SimilarityThreshold: 0.3,
		MaxSuggestions:      3,
		SearchLimit:         10,
	}
}

func TestSuggestRanksBySimilarity(t *testing.T) {
	cache := cacheOf(t, "Tomato", "Potato", "Tomato Sauce", "Chicken Breast")
	m := NewMatcher(nil, cache, testMatchConfig(), nil)

	got := m.Suggest(context.Background(), "Tomatoe")
	if len(got) == 0 {
		t.Fatal("no suggestions for a near-exact match")
	}
	if got[0].IngredientName != "Tomato" {
		t.Errorf("top suggestion = %q, want Tomato", got[0].IngredientName)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Errorf("suggestions not in descending confidence order: %v", got)
		}
	}
	for _, s := range got {
		if s.DetectedText != "Tomatoe" {
			t.Errorf("DetectedText = %q, want the original candidate", s.DetectedText)
		}
		if s.Confidence <= 0 || s.Confidence > 100 {
			t.Errorf("confidence %v outside (0,100]", s.Confidence)
		}
	}
}

func TestSuggestExactAndSubstring(t *testing.T) {
	cache := cacheOf(t, "Milk", "Whole Milk", "Almond Milk")
	m := NewMatcher(nil, cache, testMatchConfig(), nil)

	got := m.Suggest(context.Background(), "Milk")
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}
	if got[0].IngredientName != "Milk" || got[0].Confidence != 100 {
		t.Errorf("top = %q at %v, want exact match Milk at 100", got[0].IngredientName, got[0].Confidence)
	}
	// Substring matches rank high but below exact.
	for _, s := range got[1:] {
		if s.Confidence != 90 {
			t.Errorf("substring match %q confidence = %v, want 90", s.IngredientName, s.Confidence)
		}
	}
}

func TestSuggestThresholdAndLimit(t *testing.T) {
	cache := cacheOf(t, "Apple", "Apples", "Applesauce", "Pineapple", "Engine Oil Additive")
	m := NewMatcher(nil, cache, testMatchConfig(), nil)

	got := m.Suggest(context.Background(), "Apple")
	if len(got) > 3 {
		t.Errorf("got %d suggestions, want at most 3", len(got))
	}
	for _, s := range got {
		if s.Confidence < 30 {
			t.Errorf("suggestion %q below the similarity threshold: %v", s.IngredientName, s.Confidence)
		}
		if s.IngredientName == "Engine Oil Additive" {
			t.Errorf("dissimilar name %q suggested", s.IngredientName)
		}
	}
}

func TestSuggestEmptyCandidate(t *testing.T) {
	cache := cacheOf(t, "Milk")
	m := NewMatcher(nil, cache, testMatchConfig(), nil)

	for _, candidate := range []string{"", "   ", "$3.98", "(6 lbs)", "12.49"} {
		if got := m.Suggest(context.Background(), candidate); len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want none", candidate, got)
		}
	}
}

func TestSuggestSearchErrorFallsBackToCache(t *testing.T) {
	cache := cacheOf(t, "Chicken Breast")
	search := &staticSearch{err: errors.New("connection refused")}
	m := NewMatcher(search, cache, testMatchConfig(), nil)

	got := m.Suggest(context.Background(), "Chicken")
	if len(got) == 0 {
		t.Fatal("search failure must degrade to the cached list, not to zero suggestions")
	}
	if got[0].IngredientName != "Chicken Breast" {
		t.Errorf("top = %q, want Chicken Breast", got[0].IngredientName)
	}
}

func TestSuggestDedupesSearchAndCache(t *testing.T) {
	id := uuid.New()
	search := &staticSearch{hits: []SearchHit{{ID: id, Name: "Tomato"}}}
	cache := cacheOf(t, "Tomato", "Tomato Paste")
	m := NewMatcher(search, cache, testMatchConfig(), nil)

	got := m.Suggest(context.Background(), "Tomato")
	seen := map[string]int{}
	for _, s := range got {
		seen[s.IngredientName]++
	}
	if seen["Tomato"] != 1 {
		t.Errorf("Tomato suggested %d times, want exactly once", seen["Tomato"])
	}
	if got[0].IngredientID != id {
		t.Errorf("top suggestion ID = %v, want the database hit %v", got[0].IngredientID, id)
	}
}

func TestNameCacheRefreshSwapsAtomically(t *testing.T) {
	lister := &staticLister{entries: entriesOf("Milk", "Bread")}
	c := NewNameCache(lister, time.Hour, nil)

	if got := c.Names(); len(got) != 0 {
		t.Errorf("fresh cache names = %v, want empty", got)
	}

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := c.Names(); len(got) != 2 {
		t.Fatalf("names = %v, want 2", got)
	}

	// A failed refresh keeps the previous snapshot intact.
	lister.err = errors.New("db down")
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh succeeded against a failing lister")
	}
	if got := c.Names(); len(got) != 2 {
		t.Errorf("names after failed refresh = %v, want previous snapshot", got)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"milk", "milk", 1.0},
		{"Milk", "MILK", 1.0},
		{"milk", "whole milk", 0.9},
		{"tomato sauce", "tomato", 0.9},
	}
	for _, tc := range tests {
		if got := Similarity(tc.a, tc.b); got != tc.want {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	if near := Similarity("tomatoe", "tomato"); near < 0.8 {
		t.Errorf("Similarity(tomatoe, tomato) = %v, want a near-match score", near)
	}
	if far := Similarity("tomato", "chicken"); far > 0.4 {
		t.Errorf("Similarity(tomato, chicken) = %v, want a low score", far)
	}
}
