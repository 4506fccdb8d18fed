package recetario

import (
	"context"
	"strings"

	"github.com/recetario/recetario-mcp/domain/search"
)

// recipeDomains boost results toward known recipe sites; only the first
// three go into the site filter to keep the query short
var recipeDomains = []string{
	"allrecipes.com",
	"recetasgratis.net",
	"cocinafacil.com.mx",
	"kiwilimon.com",
	"mexico.desertcart.com",
}

// RecipesQuery are the recipe search parameters
type RecipesQuery struct {
	Query      string
	TipoComida string // desayuno, comida or cena
	TopK       int
}

// RecipeItem is one recipe search hit
type RecipeItem struct {
	Title         string   `json:"title,omitempty"`
	URL           string   `json:"url"`
	Snippet       string   `json:"snippet,omitempty"`
	ExtraSnippets []string `json:"extra_snippets,omitempty"`
	Source        string   `json:"source"`
}

// RecipesResult is the recipes_search tool payload
type RecipesResult struct {
	Query   string       `json:"query"`
	Recetas []RecipeItem `json:"recetas"`
	Count   int          `json:"count"`
}

// SearchRecipes finds Mexican recipes on the web
func (s *Service) SearchRecipes(ctx context.Context, q RecipesQuery) *RecipesResult {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		query = "recetas mexicanas"
	}
	tipoComida := strings.ToLower(strings.TrimSpace(q.TipoComida))
	switch tipoComida {
	case "desayuno", "comida", "cena":
		query = query + " " + tipoComida
	}

	boosted := query + " " + siteFilter(recipeDomains[:3])

	resp := s.search.Search(ctx, search.Request{
		Query:         boosted,
		TopK:          clampTopK(q.TopK, 10, 20),
		Country:       "MX",
		SearchLang:    "es",
		ExtraSnippets: true,
	})

	recetas := make([]RecipeItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		recetas = append(recetas, RecipeItem{
			Title:         r.Title,
			URL:           r.URL,
			Snippet:       r.Snippet,
			ExtraSnippets: r.ExtraSnippets,
			Source:        "brave",
		})
	}

	return &RecipesResult{Query: query, Recetas: recetas, Count: len(recetas)}
}
