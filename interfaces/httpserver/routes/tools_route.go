package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recetario/recetario-mcp/domain/recetario"
	"github.com/recetario/recetario-mcp/infrastructure/metrics"
	"github.com/recetario/recetario-mcp/interfaces/httpserver/responses"
)

// Tool names exposed over MCP and direct dispatch
const (
	ToolRecipesSearch     = "recetario.recipes_search"
	ToolIngredientsSearch = "recetario.ingredients_search"
	ToolPricesSearch      = "recetario.prices_search"
	ToolStoresSearch      = "recetario.stores_search"
)

var toolNames = []string{
	ToolRecipesSearch,
	ToolIngredientsSearch,
	ToolPricesSearch,
	ToolStoresSearch,
}

// ToolsRoute exposes the tool inventory and a direct dispatch endpoint for
// clients that speak plain JSON instead of MCP
type ToolsRoute struct {
	service *recetario.Service
}

// NewToolsRoute creates the direct dispatch route
func NewToolsRoute(service *recetario.Service) *ToolsRoute {
	return &ToolsRoute{
		service: service,
	}
}

// RegisterRouter mounts the tool endpoints on the router group
func (route *ToolsRoute) RegisterRouter(router *gin.RouterGroup) {
	router.GET("/tools", route.listTools)
	router.POST("/tools/call", route.callTool)
}

func (route *ToolsRoute) listTools(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, gin.H{"tools": toolNames, "count": len(toolNames)})
}

type toolCallRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// callTool dispatches {"tool": ..., "params": {...}} to a composer. Unknown
// tools answer with the valid tool list instead of a bare 404 so callers can
// self-correct.
func (route *ToolsRoute) callTool(reqCtx *gin.Context) {
	var req toolCallRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, http.StatusBadRequest, responses.ErrorResponse{
			Error: "invalid tool call payload",
		})
		return
	}

	result, ok := route.dispatch(reqCtx, req.Tool, req.Params)
	if !ok {
		reqCtx.JSON(http.StatusOK, responses.ToolCallResponse{
			Success:        false,
			Error:          "Tool not found: " + req.Tool,
			AvailableTools: toolNames,
		})
		return
	}

	reqCtx.JSON(http.StatusOK, result)
}

func (route *ToolsRoute) dispatch(reqCtx *gin.Context, tool string, params map[string]any) (*responses.ToolCallResponse, bool) {
	ctx := reqCtx.Request.Context()
	start := time.Now()

	var payload any
	switch tool {
	case ToolRecipesSearch:
		payload = route.service.SearchRecipes(ctx, recetario.RecipesQuery{
			Query:      paramQuery(params),
			TipoComida: paramString(params, "tipo_comida"),
			TopK:       paramInt(params, "topK"),
		})
	case ToolIngredientsSearch:
		payload = route.service.SearchIngredients(ctx, recetario.IngredientsQuery{
			Query: paramQuery(params),
			TopK:  paramInt(params, "topK"),
		})
	case ToolPricesSearch:
		payload = route.service.SearchPrices(ctx, recetario.PricesQuery{
			Query:   paramQuery(params),
			Product: paramString(params, "product"),
			TopK:    paramInt(params, "topK"),
			Scrape:  paramBool(params, "scraping", true),
		})
	case ToolStoresSearch:
		payload = route.service.SearchStores(ctx, recetario.StoresQuery{
			Query:    paramQuery(params),
			Location: paramString(params, "location"),
			TopK:     paramInt(params, "topK"),
		})
	default:
		// Fixed label keeps cardinality bounded against arbitrary tool names
		metrics.RecordToolCall("unknown", "not_found", time.Since(start).Seconds())
		return nil, false
	}

	duration := time.Since(start)
	metrics.RecordToolCall(tool, "ok", duration.Seconds())

	return &responses.ToolCallResponse{
		Success:    true,
		Result:     payload,
		Tool:       tool,
		DurationMS: float64(duration.Microseconds()) / 1000.0,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}, true
}

func paramQuery(params map[string]any) string {
	if q := paramString(params, "query"); q != "" {
		return q
	}
	return paramString(params, "q")
}

func paramString(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// paramInt tolerates the float64 that encoding/json produces for numbers
func paramInt(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func paramBool(params map[string]any, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
