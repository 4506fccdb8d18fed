package brave

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/recetario/recetario-mcp/domain/search"
	"github.com/recetario/recetario-mcp/infrastructure/metrics"
)

// Brave Web Search API (GET).
// Docs: https://api-dashboard.search.brave.com/api-reference/web/search/get
//   - Auth: header X-Subscription-Token
//   - Params: q (required), count (max 20), country, search_lang,
//     extra_snippets, freshness, offset (max 9)
const (
	searchEndpoint = "https://api.search.brave.com/res/v1/web/search"

	countMax  = 20
	offsetMax = 9
)

// Admitter gates each outbound provider call
type Admitter interface {
	Admit(ctx context.Context) bool
}

// Client implements the Brave Web Search API client
type Client struct {
	httpClient *resty.Client
	apiKey     string
	governor   Admitter
	endpoint   string
}

var _ search.Client = (*Client)(nil)

// NewClient creates a new Brave API client
func NewClient(apiKey string, timeout time.Duration, governor Admitter) *Client {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	httpClient := resty.New().
		SetHeader("User-Agent", "Recetario-MCP/1.0").
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Encoding", "gzip").
		SetTimeout(timeout).
		SetRetryCount(0)

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		governor:   governor,
		endpoint:   searchEndpoint,
	}
}

// webResponse mirrors the subset of the Brave response body we consume
type webResponse struct {
	Query struct {
		MoreResultsAvailable bool `json:"more_results_available"`
	} `json:"query"`
	Web struct {
		Results []webResult `json:"results"`
	} `json:"web"`
}

type webResult struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Description   string   `json:"description"`
	Age           string   `json:"age"`
	ExtraSnippets []string `json:"extra_snippets"`
}

// Search performs a web search. A missing credential or a governor denial is
// not an error: both yield an empty response. Transport faults and non-2xx
// statuses are returned as errors for the domain service to degrade.
func (c *Client) Search(ctx context.Context, req search.Request) (*search.Response, error) {
	if !c.hasAPIKey() {
		return search.Empty(), nil
	}
	if c.governor != nil && !c.governor.Admit(ctx) {
		return search.Empty(), nil
	}

	topK := clamp(req.TopK, 1, countMax)
	params := map[string]string{
		"q":     req.Query,
		"count": strconv.Itoa(topK),
	}
	if req.Country != "" {
		params["country"] = req.Country
	}
	if req.SearchLang != "" {
		params["search_lang"] = req.SearchLang
	}
	if req.ExtraSnippets {
		params["extra_snippets"] = "true"
	}
	if req.Freshness != "" {
		params["freshness"] = string(req.Freshness)
	}
	if req.Offset >= 0 && req.Offset <= offsetMax {
		params["offset"] = strconv.Itoa(req.Offset)
	}

	var raw webResponse
	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Subscription-Token", c.apiKey).
		SetQueryParams(params).
		SetResult(&raw).
		Get(c.endpoint)
	metrics.RecordProviderLatency("brave", time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("failed to query Brave search API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("Brave search API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	results := make([]search.Result, 0, topK)
	for _, item := range raw.Web.Results {
		// The provider may return more than requested
		if len(results) >= topK {
			break
		}
		results = append(results, search.Result{
			Title:         item.Title,
			URL:           item.URL,
			Snippet:       item.Description,
			ExtraSnippets: item.ExtraSnippets,
			Age:           item.Age,
		})
	}

	return &search.Response{
		Results:       results,
		MoreAvailable: raw.Query.MoreResultsAvailable,
	}, nil
}

func (c *Client) hasAPIKey() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
