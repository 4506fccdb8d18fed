package scraping

import "strings"

// Store labels for supermarket product pages
const (
	StoreWalmart  = "Walmart"
	StoreSoriana  = "Soriana"
	StoreChedraui = "Chedraui"
	StoreOther    = "Otro"
)

// Record is the best-effort extraction result for one product page.
// Price and Name are nil whenever the page was unavailable or no selector
// matched; a record is still produced for every requested URL.
type Record struct {
	URL   string  `json:"url"`
	Store string  `json:"store"`
	Price *string `json:"price"`
	Name  *string `json:"name"`
}

// InferStore maps a product URL to a store label by host token, "Otro" when
// no known retailer matches
func InferStore(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "walmart"):
		return StoreWalmart
	case strings.Contains(lower, "soriana"):
		return StoreSoriana
	case strings.Contains(lower, "chedraui"):
		return StoreChedraui
	default:
		return StoreOther
	}
}
