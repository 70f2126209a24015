package repository

import (
	"context"
	"log/slog"

	"github.com/cookify/receipt-ocr-service/gen/ent"
	"github.com/cookify/receipt-ocr-service/gen/ent/ingredient"
	"github.com/cookify/receipt-ocr-service/internal/match"
)

// IngredientRepository serves both matcher sourcing paths: the database
// search and the cached-name-list refresh.
type IngredientRepository interface {
	match.SearchService
	match.Lister
}

type ingredientRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIngredientRepository(client *ent.Client, logger *slog.Logger) IngredientRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ingredientRepository{client: client, logger: logger}
}

// SearchByName returns ingredients whose name contains the query,
// case-insensitively, ordered by name for stable ranking input.
func (r *ingredientRepository) SearchByName(ctx context.Context, query string, limit int) ([]match.SearchHit, error) {
	rows, err := r.client.Ingredient.Query().
		Where(ingredient.NameContainsFold(query)).
		Order(ingredient.ByName()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("ingredient search failed", "query", query, "error", err)
		return nil, err
	}

	hits := make([]match.SearchHit, len(rows))
	for i, row := range rows {
		hits[i] = match.SearchHit{ID: row.ID, Name: row.Name}
	}
	return hits, nil
}

// ListIngredients returns the full ingredient list for a name-cache refresh.
func (r *ingredientRepository) ListIngredients(ctx context.Context) ([]match.Entry, error) {
	rows, err := r.client.Ingredient.Query().
		Order(ingredient.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("ingredient list failed", "error", err)
		return nil, err
	}

	entries := make([]match.Entry, len(rows))
	for i, row := range rows {
		entries[i] = match.Entry{ID: row.ID, Name: row.Name}
	}
	return entries, nil
}
