package scraper

import (
	"strings"

	"github.com/recetario/recetario-mcp/domain/scraping"
)

// strategy is a declarative extraction rule set for one retailer's markup.
// Selector lists are ordered: the first selector matching any element wins.
// Within a matched element the priceAttrs are read before visible text, since
// machine-readable attributes beat rendered strings when pages reformat
// prices for display.
type strategy struct {
	store          string
	hostTokens     []string
	priceSelectors []string
	priceAttrs     []string
	nameSelectors  []string
}

// storeStrategies is checked in order; first host-token match wins.
// Selectors track current page markup and degrade to null fields when the
// sites change layout.
var storeStrategies = []strategy{
	{
		store:      scraping.StoreWalmart,
		hostTokens: []string{"walmart"},
		priceSelectors: []string{
			"[data-automation='product-price']",
			".price-main .price",
			"[itemprop='price']",
		},
		priceAttrs: []string{"content"},
		nameSelectors: []string{
			"h1[data-automation='product-title']",
			".product-title",
			"[itemprop='name']",
		},
	},
	{
		store:      scraping.StoreSoriana,
		hostTokens: []string{"soriana"},
		priceSelectors: []string{
			".price",
			"[itemprop='price']",
			".product-price",
		},
		priceAttrs: []string{"content"},
		nameSelectors: []string{
			"h1",
			".product-name",
			"[itemprop='name']",
		},
	},
	{
		store:      scraping.StoreChedraui,
		hostTokens: []string{"chedraui"},
		priceSelectors: []string{
			".price",
			"[itemprop='price']",
			".product-price",
			"[data-price]",
		},
		priceAttrs: []string{"content", "data-price"},
		nameSelectors: []string{
			"h1",
			".product-name",
			"[itemprop='name']",
		},
	},
}

// genericStrategy is the store-independent fallback
var genericStrategy = strategy{
	store: scraping.StoreOther,
	priceSelectors: []string{
		"[itemprop='price']",
		".price",
		"[data-price]",
	},
	priceAttrs: []string{"content", "data-price"},
	nameSelectors: []string{
		"h1",
		"[itemprop='name']",
		".product-title",
	},
}

// strategyFor selects the extraction strategy for url, nil when no known
// retailer matches
func strategyFor(url string) *strategy {
	lower := strings.ToLower(url)
	for i := range storeStrategies {
		for _, token := range storeStrategies[i].hostTokens {
			if strings.Contains(lower, token) {
				return &storeStrategies[i]
			}
		}
	}
	return nil
}
