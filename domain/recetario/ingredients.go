package recetario

import (
	"context"
	"strings"

	"github.com/recetario/recetario-mcp/domain/search"
)

// IngredientsQuery are the ingredient search parameters
type IngredientsQuery struct {
	Query string
	TopK  int
}

// IngredientItem is one ingredient search hit
type IngredientItem struct {
	Title         string   `json:"title,omitempty"`
	URL           string   `json:"url"`
	Snippet       string   `json:"snippet,omitempty"`
	ExtraSnippets []string `json:"extra_snippets,omitempty"`
	Source        string   `json:"source"`
}

// IngredientsResult is the ingredients_search tool payload
type IngredientsResult struct {
	Query        string           `json:"query"`
	Ingredientes []IngredientItem `json:"ingredientes"`
	Count        int              `json:"count"`
}

// SearchIngredients finds cooking ingredient information on the web
func (s *Service) SearchIngredients(ctx context.Context, q IngredientsQuery) *IngredientsResult {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		query = "ingredientes cocina mexicana"
	}

	resp := s.search.Search(ctx, search.Request{
		Query:         query,
		TopK:          clampTopK(q.TopK, 10, 20),
		Country:       "MX",
		SearchLang:    "es",
		ExtraSnippets: true,
	})

	ingredientes := make([]IngredientItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		ingredientes = append(ingredientes, IngredientItem{
			Title:         r.Title,
			URL:           r.URL,
			Snippet:       r.Snippet,
			ExtraSnippets: r.ExtraSnippets,
			Source:        "brave",
		})
	}

	return &IngredientsResult{Query: query, Ingredientes: ingredientes, Count: len(ingredientes)}
}
