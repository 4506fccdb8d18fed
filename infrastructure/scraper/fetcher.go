package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher performs single-attempt bounded GETs against public retailer
// pages. No retries: batch latency stays bounded by the per-page timeout.
type Fetcher struct {
	httpClient *resty.Client
}

// NewFetcher creates a page fetcher with the given per-request timeout.
// Browser-like headers avoid the most basic bot detection.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := resty.New().
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "es-MX,es;q=0.8,en;q=0.5").
		SetTimeout(timeout).
		SetRetryCount(0)

	return &Fetcher{httpClient: httpClient}
}

// Fetch returns the raw HTML body of url, or an error when the page is
// unavailable (malformed URL, transport fault, timeout or non-2xx status)
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("invalid page URL %q", url)
	}

	resp, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("page fetch HTTP %d: %s", resp.StatusCode(), resp.Status())
	}

	return string(resp.Body()), nil
}
