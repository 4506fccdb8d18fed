package scraper

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/recetario/recetario-mcp/domain/scraping"
)

const maxNameLen = 200

// Extractor turns raw retailer HTML into a structured price record using the
// store strategy matching the URL, with a generic document-wide fallback.
// It holds no state: extraction is a pure function of (html, url).
type Extractor struct{}

// NewExtractor creates an extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract never fails: an empty or malformed document yields a record with
// null price and name, with the store still inferred from the URL
func (e *Extractor) Extract(html, url string) scraping.Record {
	record := scraping.Record{
		URL:   url,
		Store: scraping.InferStore(url),
	}
	if strings.TrimSpace(html) == "" {
		return record
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return record
	}

	if st := strategyFor(url); st != nil {
		record.Price = extractPrice(doc, st)
		record.Name = extractName(doc, st)
		if record.Price != nil || record.Name != nil {
			return record
		}
		// Store markup moved on; try the generic heuristics before giving up
	}

	record.Price = extractGenericPrice(doc)
	record.Name = extractGenericName(doc)
	return record
}

// extractPrice reads the first element matched by the strategy's ordered
// price selectors, preferring machine-readable attributes over visible text
func extractPrice(doc *goquery.Document, st *strategy) *string {
	for _, selector := range st.priceSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		return ParsePrice(elementPriceText(sel, st.priceAttrs))
	}
	return nil
}

func extractName(doc *goquery.Document, st *strategy) *string {
	for _, selector := range st.nameSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		name := strings.TrimSpace(sel.Text())
		if name == "" {
			continue
		}
		return truncateName(name)
	}
	return nil
}

// extractGenericPrice scans every candidate element document-wide and stops
// at the first parseable price
func extractGenericPrice(doc *goquery.Document) *string {
	var price *string
	doc.Find(strings.Join(genericStrategy.priceSelectors, ", ")).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		price = ParsePrice(elementPriceText(sel, genericStrategy.priceAttrs))
		return price == nil
	})
	return price
}

// extractGenericName takes the first short-enough heading or product name.
// Very long matches are skipped: they are almost always layout noise.
func extractGenericName(doc *goquery.Document) *string {
	var name *string
	doc.Find(strings.Join(genericStrategy.nameSelectors, ", ")).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" || utf8.RuneCountInString(text) >= 300 {
			return true
		}
		name = truncateName(text)
		return false
	})
	return name
}

func elementPriceText(sel *goquery.Selection, attrs []string) string {
	for _, attr := range attrs {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return strings.TrimSpace(sel.Text())
}

// truncateName caps the name at maxNameLen characters, not bytes, so accented
// product names are never cut mid-rune
func truncateName(name string) *string {
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	return &name
}
