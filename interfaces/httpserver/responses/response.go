package responses

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body for the HTTP surface
type ErrorResponse struct {
	Error          string   `json:"error"`
	Method         string   `json:"method,omitempty"`
	Tool           string   `json:"tool,omitempty"`
	AvailableTools []string `json:"available_tools,omitempty"`
}

// ToolCallResponse is the envelope for direct tool dispatch. Error and
// AvailableTools are only populated when Success is false.
type ToolCallResponse struct {
	Success        bool     `json:"success"`
	Result         any      `json:"result,omitempty"`
	Tool           string   `json:"tool,omitempty"`
	DurationMS     float64  `json:"duration_ms,omitempty"`
	Timestamp      string   `json:"timestamp,omitempty"`
	Error          string   `json:"error,omitempty"`
	AvailableTools []string `json:"available_tools,omitempty"`
}

// HandleNewError aborts the request with a structured error body
func HandleNewError(reqCtx *gin.Context, statusCode int, resp ErrorResponse) {
	reqCtx.AbortWithStatusJSON(statusCode, resp)
}
