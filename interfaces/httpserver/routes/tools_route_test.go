package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario/recetario-mcp/domain/recetario"
	"github.com/recetario/recetario-mcp/domain/scraping"
	"github.com/recetario/recetario-mcp/domain/search"
	"github.com/recetario/recetario-mcp/infrastructure/metrics"
	"github.com/recetario/recetario-mcp/interfaces/httpserver/routes"
)

type stubSearchClient struct {
	resp *search.Response
}

func (s *stubSearchClient) Search(context.Context, search.Request) (*search.Response, error) {
	if s.resp == nil {
		return search.Empty(), nil
	}
	return s.resp, nil
}

type noopScraper struct{}

func (noopScraper) ScrapeAll(_ context.Context, urls []string) []scraping.Record {
	return make([]scraping.Record, len(urls))
}

func newToolsRouter(client search.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := recetario.NewService(
		search.NewService(client),
		scraping.NewService(noopScraper{}),
	)
	router := gin.New()
	v1 := router.Group("/v1")
	routes.NewToolsRoute(service).RegisterRouter(v1)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListTools(t *testing.T) {
	router := newToolsRouter(&stubSearchClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/tools", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tools []string `json:"tools"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Count)
	assert.Contains(t, body.Tools, "recetario.recipes_search")
	assert.Contains(t, body.Tools, "recetario.prices_search")
}

func TestCallTool_RecipesSearch(t *testing.T) {
	client := &stubSearchClient{resp: &search.Response{
		Results: []search.Result{{Title: "Pollo a la naranja", URL: "https://kiwilimon.com/r/1", Snippet: "Receta"}},
	}}
	router := newToolsRouter(client)

	rec := postJSON(t, router, "/v1/tools/call", map[string]any{
		"tool":   "recetario.recipes_search",
		"params": map[string]any{"query": "pollo a la naranja", "topK": 5},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Tool    string `json:"tool"`
		Result  struct {
			Query   string `json:"query"`
			Recetas []struct {
				URL    string `json:"url"`
				Source string `json:"source"`
			} `json:"recetas"`
			Count int `json:"count"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "recetario.recipes_search", body.Tool)
	assert.Equal(t, "pollo a la naranja", body.Result.Query)
	require.Equal(t, 1, body.Result.Count)
	assert.Equal(t, "https://kiwilimon.com/r/1", body.Result.Recetas[0].URL)
	assert.Equal(t, "brave", body.Result.Recetas[0].Source)
}

func TestCallTool_PricesWithoutScraping(t *testing.T) {
	client := &stubSearchClient{resp: &search.Response{
		Results: []search.Result{{Title: "Leche", URL: "https://www.walmart.com.mx/ip/leche/1"}},
	}}
	router := newToolsRouter(client)

	rec := postJSON(t, router, "/v1/tools/call", map[string]any{
		"tool":   "recetario.prices_search",
		"params": map[string]any{"q": "leche", "scraping": false},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Result  struct {
			Precios []struct {
				Price  *string `json:"price"`
				Source string  `json:"source"`
				Store  string  `json:"store"`
			} `json:"precios"`
			Count int `json:"count"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Equal(t, 1, body.Result.Count)
	assert.Nil(t, body.Result.Precios[0].Price)
	assert.Equal(t, "brave", body.Result.Precios[0].Source)
	assert.Equal(t, "Walmart", body.Result.Precios[0].Store)
}

func TestCallTool_UnknownTool(t *testing.T) {
	router := newToolsRouter(&stubSearchClient{})
	notFoundCounter := metrics.ToolCallsTotal.WithLabelValues("unknown", "not_found")
	before := testutil.ToFloat64(notFoundCounter)

	rec := postJSON(t, router, "/v1/tools/call", map[string]any{
		"tool":   "recetario.menu_search",
		"params": map[string]any{},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(notFoundCounter))

	var body struct {
		Success        bool     `json:"success"`
		Error          string   `json:"error"`
		AvailableTools []string `json:"available_tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "recetario.menu_search")
	assert.Len(t, body.AvailableTools, 4)
}

func TestCallTool_InvalidPayload(t *testing.T) {
	router := newToolsRouter(&stubSearchClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/tools/call", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMCPMethodGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/mcp",
		routes.MCPMethodGuard(map[string]bool{"tools/list": true}),
		func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) },
	)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"allowed method", `{"jsonrpc":"2.0","method":"tools/list","id":1}`, http.StatusOK},
		{"unsupported method", `{"jsonrpc":"2.0","method":"resources/read","id":1}`, http.StatusBadRequest},
		{"missing method", `{"jsonrpc":"2.0","id":1}`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
		{"invalid json", `{{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/mcp", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
