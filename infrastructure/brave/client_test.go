package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario/recetario-mcp/domain/search"
)

type allowAll struct{}

func (allowAll) Admit(context.Context) bool { return true }

type denyAll struct{}

func (denyAll) Admit(context.Context) bool { return false }

func braveBody(n int, more bool) string {
	results := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, map[string]any{
			"title":       fmt.Sprintf("Resultado %d", i),
			"url":         fmt.Sprintf("https://example.mx/%d", i),
			"description": fmt.Sprintf("Descripcion %d", i),
		})
	}
	body := map[string]any{
		"query": map[string]any{"more_results_available": more},
		"web":   map[string]any{"results": results},
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string, gov Admitter) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(apiKey, 2*time.Second, gov)
	client.endpoint = server.URL
	return client
}

func TestSearch_NoCredentialReturnsEmpty(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "", allowAll{})

	resp, err := client.Search(context.Background(), search.Request{Query: "tacos"})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.False(t, resp.MoreAvailable)
	assert.False(t, called, "no request may leave the process without a credential")
}

func TestSearch_AdmissionDeniedReturnsEmpty(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "test-key", denyAll{})

	resp, err := client.Search(context.Background(), search.Request{Query: "tacos"})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.False(t, called)
}

func TestSearch_BuildsProviderParams(t *testing.T) {
	var got url.Values
	var gotToken string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		gotToken = r.Header.Get("X-Subscription-Token")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, braveBody(2, false))
	}, "test-key", allowAll{})

	_, err := client.Search(context.Background(), search.Request{
		Query:         "pollo precio",
		TopK:          5,
		Country:       "MX",
		SearchLang:    "es",
		ExtraSnippets: true,
		Freshness:     search.FreshnessPastWeek,
		Offset:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotToken)
	assert.Equal(t, "pollo precio", got.Get("q"))
	assert.Equal(t, "5", got.Get("count"))
	assert.Equal(t, "MX", got.Get("country"))
	assert.Equal(t, "es", got.Get("search_lang"))
	assert.Equal(t, "true", got.Get("extra_snippets"))
	assert.Equal(t, "pw", got.Get("freshness"))
	assert.Equal(t, "3", got.Get("offset"))
}

func TestSearch_TopKClampedAndOffsetOmitted(t *testing.T) {
	tests := []struct {
		name       string
		topK       int
		offset     int
		wantCount  string
		wantOffset bool
	}{
		{"zero topK becomes 1", 0, 0, "1", true},
		{"topK above ceiling clamped", 50, 0, "20", true},
		{"offset above maximum omitted", 10, 10, "10", false},
		{"negative offset omitted", 10, -1, "10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, braveBody(0, false))
			}, "test-key", allowAll{})

			_, err := client.Search(context.Background(), search.Request{
				Query:  "x",
				TopK:   tt.topK,
				Offset: tt.offset,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantCount, got.Get("count"))
			assert.Equal(t, tt.wantOffset, got.Has("offset"))
		})
	}
}

func TestSearch_ProjectsAndTruncatesResults(t *testing.T) {
	// Provider returning more results than requested
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, braveBody(8, true))
	}, "test-key", allowAll{})

	resp, err := client.Search(context.Background(), search.Request{Query: "tacos", TopK: 3})
	require.NoError(t, err)

	require.Len(t, resp.Results, 3)
	assert.True(t, resp.MoreAvailable)
	assert.Equal(t, "Resultado 0", resp.Results[0].Title)
	assert.Equal(t, "https://example.mx/0", resp.Results[0].URL)
	assert.Equal(t, "Descripcion 0", resp.Results[0].Snippet)
}

func TestSearch_UpstreamErrorsReported(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, "test-key", allowAll{})

	_, err := client.Search(context.Background(), search.Request{Query: "tacos", TopK: 3})
	assert.Error(t, err)
}
