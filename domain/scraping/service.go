package scraping

import "context"

// Scraper defines the batch scraping operations required by the domain layer
type Scraper interface {
	ScrapeAll(ctx context.Context, urls []string) []Record
}

// Service exposes supermarket price scraping while remaining
// transport-agnostic
type Service struct {
	scraper Scraper
}

// NewService creates a new scraping service
func NewService(scraper Scraper) *Service {
	return &Service{
		scraper: scraper,
	}
}

// ScrapePrices fetches each URL and extracts price and product name. One
// record per URL (capped), in input order; failures yield null fields.
func (s *Service) ScrapePrices(ctx context.Context, urls []string) []Record {
	return s.scraper.ScrapeAll(ctx, urls)
}
