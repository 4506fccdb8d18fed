package routes

import (
	"context"
	"encoding/json"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/recetario/recetario-mcp/domain/recetario"
	"github.com/recetario/recetario-mcp/infrastructure/metrics"
	"github.com/recetario/recetario-mcp/utils/mcp"
)

// RecipesSearchArgs defines the arguments for the recetario.recipes_search tool
type RecipesSearchArgs struct {
	Query      string `json:"query,omitempty" jsonschema:"description=Recipe search query (e.g. 'pollo a la naranja')"`
	Q          string `json:"q,omitempty" jsonschema:"description=Alias for query"`
	TipoComida string `json:"tipo_comida,omitempty" jsonschema:"description=Meal type filter: desayuno, comida or cena"`
	TopK       int    `json:"topK,omitempty" jsonschema:"description=Number of results to return (default: 10, max: 20)"`
}

// IngredientsSearchArgs defines the arguments for the recetario.ingredients_search tool
type IngredientsSearchArgs struct {
	Query string `json:"query,omitempty" jsonschema:"description=Ingredient search query"`
	Q     string `json:"q,omitempty" jsonschema:"description=Alias for query"`
	TopK  int    `json:"topK,omitempty" jsonschema:"description=Number of results to return (default: 10, max: 20)"`
}

// PricesSearchArgs defines the arguments for the recetario.prices_search tool
type PricesSearchArgs struct {
	Query    string `json:"query,omitempty" jsonschema:"description=Product search query"`
	Q        string `json:"q,omitempty" jsonschema:"description=Alias for query"`
	Product  string `json:"product,omitempty" jsonschema:"description=Product name; defaults to query"`
	TopK     int    `json:"topK,omitempty" jsonschema:"description=Number of results to return (default: 5, max: 15)"`
	Scraping *bool  `json:"scraping,omitempty" jsonschema:"description=Scrape supermarket pages for live prices (default: true)"`
}

// StoresSearchArgs defines the arguments for the recetario.stores_search tool
type StoresSearchArgs struct {
	Query    string `json:"query,omitempty" jsonschema:"description=Supermarket search query"`
	Q        string `json:"q,omitempty" jsonschema:"description=Alias for query"`
	Location string `json:"location,omitempty" jsonschema:"description=City or area to search near (e.g. 'CDMX')"`
	TopK     int    `json:"topK,omitempty" jsonschema:"description=Number of results to return (default: 10, max: 20)"`
}

// RecetarioMCP handles MCP tool registration for the recetario tools
type RecetarioMCP struct {
	service *recetario.Service
}

// NewRecetarioMCP creates a new recetario MCP handler
func NewRecetarioMCP(service *recetario.Service) *RecetarioMCP {
	return &RecetarioMCP{
		service: service,
	}
}

// RegisterTools registers the four recetario tools with the MCP server
func (r *RecetarioMCP) RegisterTools(server *mcpserver.MCPServer) {
	server.AddTool(
		mcpgo.NewTool(ToolRecipesSearch,
			mcp.ReflectToMCPOptions(
				"Search Mexican recipes on the web, boosted toward known recipe sites.",
				RecipesSearchArgs{},
			)...,
		),
		func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			start := time.Now()
			result := r.service.SearchRecipes(ctx, recetario.RecipesQuery{
				Query:      queryArg(req),
				TipoComida: req.GetString("tipo_comida", ""),
				TopK:       req.GetInt("topK", 0),
			})
			return toolResult(ToolRecipesSearch, result, start)
		},
	)

	server.AddTool(
		mcpgo.NewTool(ToolIngredientsSearch,
			mcp.ReflectToMCPOptions(
				"Search cooking ingredient information on the web.",
				IngredientsSearchArgs{},
			)...,
		),
		func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			start := time.Now()
			result := r.service.SearchIngredients(ctx, recetario.IngredientsQuery{
				Query: queryArg(req),
				TopK:  req.GetInt("topK", 0),
			})
			return toolResult(ToolIngredientsSearch, result, start)
		},
	)

	server.AddTool(
		mcpgo.NewTool(ToolPricesSearch,
			mcp.ReflectToMCPOptions(
				"Find supermarket prices for a product (Walmart, Soriana, Chedraui), optionally scraping product pages for live prices.",
				PricesSearchArgs{},
			)...,
		),
		func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			start := time.Now()
			result := r.service.SearchPrices(ctx, recetario.PricesQuery{
				Query:   queryArg(req),
				Product: req.GetString("product", ""),
				TopK:    req.GetInt("topK", 0),
				Scrape:  req.GetBool("scraping", true),
			})
			return toolResult(ToolPricesSearch, result, start)
		},
	)

	server.AddTool(
		mcpgo.NewTool(ToolStoresSearch,
			mcp.ReflectToMCPOptions(
				"Search Mexican supermarkets and store pages, optionally near a location.",
				StoresSearchArgs{},
			)...,
		),
		func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			start := time.Now()
			result := r.service.SearchStores(ctx, recetario.StoresQuery{
				Query:    queryArg(req),
				Location: req.GetString("location", ""),
				TopK:     req.GetInt("topK", 0),
			})
			return toolResult(ToolStoresSearch, result, start)
		},
	)
}

// queryArg reads the search query, accepting "q" as an alias for "query"
func queryArg(req mcpgo.CallToolRequest) string {
	if q := req.GetString("query", ""); q != "" {
		return q
	}
	return req.GetString("q", "")
}

func toolResult(toolName string, payload any, start time.Time) (*mcpgo.CallToolResult, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		metrics.RecordToolCall(toolName, "error", time.Since(start).Seconds())
		return nil, err
	}
	metrics.RecordToolCall(toolName, "ok", time.Since(start).Seconds())
	return mcpgo.NewToolResultText(string(jsonBytes)), nil
}
