package search

// Freshness values accepted by the Brave Web Search API. Passed through
// opaque: custom date ranges are also valid and are not validated here.
type Freshness string

const (
	FreshnessAny       Freshness = ""
	FreshnessPastDay   Freshness = "pd"
	FreshnessPastWeek  Freshness = "pw"
	FreshnessPastMonth Freshness = "pm"
	FreshnessPastYear  Freshness = "py"
)

// Request represents a web search query
type Request struct {
	Query         string    `json:"q"`
	TopK          int       `json:"topK,omitempty"`           // Number of results (clamped to 1..20)
	Country       string    `json:"country,omitempty"`        // Region code (ISO 3166-1 alpha-2, e.g. MX)
	SearchLang    string    `json:"search_lang,omitempty"`    // Content language (ISO 639-1, e.g. es)
	ExtraSnippets bool      `json:"extra_snippets,omitempty"` // Up to 5 extra snippets per result
	Freshness     Freshness `json:"freshness,omitempty"`
	Offset        int       `json:"offset,omitempty"` // Page offset, only 0..9 is sent upstream
}

// Result is one normalized provider result
type Result struct {
	Title         string   `json:"title,omitempty"`
	URL           string   `json:"url"`
	Snippet       string   `json:"snippet,omitempty"`
	ExtraSnippets []string `json:"extra_snippets,omitempty"`
	Age           string   `json:"age,omitempty"`
}

// Response contains normalized search results
type Response struct {
	Results       []Result `json:"results"`
	MoreAvailable bool     `json:"more_results_available"`
}

// Empty returns a well-formed response with no results
func Empty() *Response {
	return &Response{Results: []Result{}, MoreAvailable: false}
}
