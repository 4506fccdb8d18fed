package scraper

import (
	"regexp"
	"strings"
)

var (
	currencyPricePattern = regexp.MustCompile(`\$\s*(\d+\.?\d*)`)
	barePricePattern     = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:MXN|pesos)?`)
)

// ParsePrice extracts a decimal price from MXN-style text (e.g. "$12.50",
// "1,234.00 pesos"). Currency-marked values take priority over bare numbers;
// nil when neither pattern matches.
func ParsePrice(text string) *string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	text = strings.ReplaceAll(text, ",", "")

	if m := currencyPricePattern.FindStringSubmatch(text); m != nil {
		return &m[1]
	}
	if m := barePricePattern.FindStringSubmatch(text); m != nil {
		return &m[1]
	}
	return nil
}
