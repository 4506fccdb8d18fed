// Package recetario holds the domain services behind the four MCP tools:
// recipe, ingredient, price and store search for a Mexican-cooking assistant.
// All of them ride on Brave web search; price search additionally scrapes
// supermarket product pages.
package recetario

import (
	"strings"

	"github.com/recetario/recetario-mcp/domain/scraping"
	"github.com/recetario/recetario-mcp/domain/search"
)

// Service composes domain queries over the search and scraping services
type Service struct {
	search   *search.Service
	scraping *scraping.Service
}

// NewService creates the recetario domain service
func NewService(searchService *search.Service, scrapingService *scraping.Service) *Service {
	return &Service{
		search:   searchService,
		scraping: scrapingService,
	}
}

// siteFilter joins domains into a Brave "(site:a OR site:b)" boost clause
func siteFilter(domains []string) string {
	parts := make([]string, 0, len(domains))
	for _, d := range domains {
		parts = append(parts, "site:"+d)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func clampTopK(topK, def, max int) int {
	if topK <= 0 {
		topK = def
	}
	if topK > max {
		topK = max
	}
	return topK
}
