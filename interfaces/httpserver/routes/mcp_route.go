package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/recetario/recetario-mcp/interfaces/httpserver/responses"
)

var allowedMCPMethods = map[string]bool{
	// Initialization / handshake
	"initialize":                true,
	"notifications/initialized": true,
	"ping":                      true,

	// Tools
	"tools/list": true,
	"tools/call": true,

	// Prompts
	"prompts/list": true,

	// Resources
	"resources/list": true,
	"resources/read": true,
}

// MCPRoute serves the streamable MCP endpoint
type MCPRoute struct {
	recetarioMCP *RecetarioMCP
	mcpServer    *mcpserver.MCPServer
	httpHandler  http.Handler
}

// NewMCPRoute creates the MCP server and registers the recetario tools
func NewMCPRoute(recetarioMCP *RecetarioMCP) *MCPRoute {
	server := mcpserver.NewMCPServer("recetario-mcp", "1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	recetarioMCP.RegisterTools(server)

	return &MCPRoute{
		recetarioMCP: recetarioMCP,
		mcpServer:    server,
		httpHandler:  mcpserver.NewStreamableHTTPServer(server, mcpserver.WithStateLess(true)),
	}
}

// RegisterRouter mounts the MCP endpoint on the router group
func (route *MCPRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/mcp",
		MCPMethodGuard(allowedMCPMethods),
		route.serveMCP,
	)
}

func (route *MCPRoute) serveMCP(reqCtx *gin.Context) {
	route.httpHandler.ServeHTTP(reqCtx.Writer, reqCtx.Request)
}

// MCPMethodGuard rejects JSON-RPC payloads whose method is not allowed
// before they reach the MCP server
func MCPMethodGuard(allowedMethods map[string]bool) gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		bodyBytes, err := io.ReadAll(reqCtx.Request.Body)
		if err != nil {
			responses.HandleNewError(reqCtx, http.StatusInternalServerError, responses.ErrorResponse{
				Error: "failed to read MCP request body",
			})
			return
		}
		_ = reqCtx.Request.Body.Close()

		if len(bodyBytes) == 0 {
			responses.HandleNewError(reqCtx, http.StatusBadRequest, responses.ErrorResponse{
				Error: "empty MCP request body",
			})
			return
		}

		reqCtx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var payload struct {
			Method string `json:"method"`
		}

		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			responses.HandleNewError(reqCtx, http.StatusBadRequest, responses.ErrorResponse{
				Error: "invalid MCP request payload",
			})
			return
		}

		if payload.Method == "" {
			responses.HandleNewError(reqCtx, http.StatusBadRequest, responses.ErrorResponse{
				Error: "missing method field in MCP request",
			})
			return
		}

		if !allowedMethods[payload.Method] {
			responses.HandleNewError(reqCtx, http.StatusBadRequest, responses.ErrorResponse{
				Error:  "unsupported MCP method",
				Method: payload.Method,
			})
			return
		}

		reqCtx.Next()
	}
}
