package recetario

import (
	"context"
	"strings"

	"github.com/recetario/recetario-mcp/domain/scraping"
	"github.com/recetario/recetario-mcp/domain/search"
)

const (
	walmartDomain  = "walmart.com.mx"
	sorianaDomain  = "soriana.com"
	chedrauiDomain = "chedraui.com.mx"

	// maxScrapedPrices bounds how many result pages get scraped per query
	maxScrapedPrices = 5
)

// PricesQuery are the price search parameters
type PricesQuery struct {
	Query   string
	Product string // Defaults to Query when empty
	TopK    int
	Scrape  bool // When false, only search results are returned (price stays null)
}

// PriceItem is one price search hit. Price stays null until scraping fills
// it in; Source flips from "brave" to "scraping" once it does.
type PriceItem struct {
	Title   string  `json:"title,omitempty"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet,omitempty"`
	Source  string  `json:"source"`
	Price   *string `json:"price"`
	Store   string  `json:"store"`
}

// PricesResult is the prices_search tool payload
type PricesResult struct {
	Query   string      `json:"query"`
	Precios []PriceItem `json:"precios"`
	Count   int         `json:"count"`
}

// SearchPrices finds supermarket product pages for a product and, when
// scraping is enabled, extracts the listed price and name from each page.
// Scraping misses leave null prices rather than dropping the item.
func (s *Service) SearchPrices(ctx context.Context, q PricesQuery) *PricesResult {
	product := strings.TrimSpace(q.Product)
	if product == "" {
		product = strings.TrimSpace(q.Query)
	}
	if product == "" {
		product = "precio producto supermercado"
	}

	resp := s.search.Search(ctx, search.Request{
		Query:      product + " precio " + walmartDomain + " OR " + sorianaDomain + " OR " + chedrauiDomain,
		TopK:       clampTopK(q.TopK, 5, 15),
		Country:    "MX",
		SearchLang: "es",
	})

	precios := make([]PriceItem, 0, len(resp.Results))
	seen := make(map[string]bool)
	for _, r := range resp.Results {
		url := strings.TrimSpace(r.URL)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		precios = append(precios, PriceItem{
			Title:   r.Title,
			URL:     url,
			Snippet: r.Snippet,
			Source:  "brave",
			Price:   nil,
			Store:   scraping.InferStore(url),
		})
	}

	if q.Scrape && len(precios) > 0 {
		s.mergeScrapedPrices(ctx, precios)
	}

	return &PricesResult{Query: product, Precios: precios, Count: len(precios)}
}

// mergeScrapedPrices scrapes the first few result pages and merges the
// extracted fields back by position
func (s *Service) mergeScrapedPrices(ctx context.Context, precios []PriceItem) {
	n := len(precios)
	if n > maxScrapedPrices {
		n = maxScrapedPrices
	}
	urls := make([]string, 0, n)
	for _, p := range precios[:n] {
		urls = append(urls, p.URL)
	}

	scraped := s.scraping.ScrapePrices(ctx, urls)
	for i := range scraped {
		if i >= len(precios) {
			break
		}
		precios[i].Price = scraped[i].Price
		if scraped[i].Store != "" {
			precios[i].Store = scraped[i].Store
		}
		precios[i].Source = "scraping"
	}
}
