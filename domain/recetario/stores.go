package recetario

import (
	"context"
	"strings"

	"github.com/recetario/recetario-mcp/domain/search"
)

// storeDomains are the Mexican supermarket chains the store search boosts
var storeDomains = []string{
	"walmart.com.mx",
	"soriana.com",
	"chedraui.com.mx",
	"heb.com.mx",
	"lacomer.com.mx",
}

// StoresQuery are the supermarket search parameters
type StoresQuery struct {
	Query    string
	Location string
	TopK     int
}

// StoreItem is one supermarket search hit
type StoreItem struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Store   string `json:"store"`
	Source  string `json:"source"`
}

// StoresResult is the stores_search tool payload
type StoresResult struct {
	Query  string      `json:"query"`
	Stores []StoreItem `json:"stores"`
	Count  int         `json:"count"`
}

// SearchStores finds supermarkets and store pages, optionally near a location
func (s *Service) SearchStores(ctx context.Context, q StoresQuery) *StoresResult {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		query = "supermercados Mexico"
	}
	if location := strings.TrimSpace(q.Location); location != "" {
		query = query + " " + location
	}

	boosted := query + " " + siteFilter(storeDomains)

	resp := s.search.Search(ctx, search.Request{
		Query:      boosted,
		TopK:       clampTopK(q.TopK, 10, 20),
		Country:    "MX",
		SearchLang: "es",
	})

	stores := make([]StoreItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		url := strings.TrimSpace(r.URL)
		stores = append(stores, StoreItem{
			Title:   r.Title,
			URL:     url,
			Snippet: r.Snippet,
			Store:   inferStoreName(url),
			Source:  "brave",
		})
	}

	return &StoresResult{Query: query, Stores: stores, Count: len(stores)}
}

// inferStoreName covers the wider chain list used by store search; price
// scraping only distinguishes the three chains it has strategies for
func inferStoreName(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "walmart"):
		return "Walmart"
	case strings.Contains(lower, "soriana"):
		return "Soriana"
	case strings.Contains(lower, "chedraui"):
		return "Chedraui"
	case strings.Contains(lower, "heb"):
		return "HEB"
	case strings.Contains(lower, "lacomer"):
		return "La Comer"
	default:
		return "Otro"
	}
}
