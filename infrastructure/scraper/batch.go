package scraper

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/recetario/recetario-mcp/domain/scraping"
	"github.com/recetario/recetario-mcp/infrastructure/metrics"
)

// maxBatchURLs bounds worst-case fan-out per request; excess URLs are
// silently dropped
const maxBatchURLs = 10

// BatchScraper fans fetch+extract out over a URL list. Results always line
// up positionally with the (capped) input, so callers can merge by index.
type BatchScraper struct {
	fetcher   *Fetcher
	extractor *Extractor
}

var _ scraping.Scraper = (*BatchScraper)(nil)

// NewBatchScraper creates a batch scraper
func NewBatchScraper(fetcher *Fetcher, extractor *Extractor) *BatchScraper {
	return &BatchScraper{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// ScrapeAll fetches and extracts up to 10 URLs concurrently. Every slot is
// filled: a failed fetch still gets a record with null fields, and a panic in
// one slot never aborts the batch. Each page carries its own fetch timeout;
// there is no batch-wide deadline.
func (b *BatchScraper) ScrapeAll(ctx context.Context, urls []string) []scraping.Record {
	if len(urls) == 0 {
		return []scraping.Record{}
	}
	if len(urls) > maxBatchURLs {
		urls = urls[:maxBatchURLs]
	}

	records := make([]scraping.Record, len(urls))
	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Str("url", url).Msg("scrape slot panicked")
					records[i] = scraping.Record{Store: scraping.StoreOther}
					metrics.RecordScrape(scraping.StoreOther, "panic")
				}
			}()
			records[i] = b.scrapeOne(ctx, url)
		}(i, url)
	}
	wg.Wait()

	return records
}

func (b *BatchScraper) scrapeOne(ctx context.Context, url string) scraping.Record {
	html, err := b.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("page unavailable")
		html = ""
	}

	record := b.extractor.Extract(html, url)

	status := "miss"
	if err != nil {
		status = "unavailable"
	} else if record.Price != nil {
		status = "ok"
	}
	metrics.RecordScrape(record.Store, status)

	return record
}
