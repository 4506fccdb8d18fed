package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/recetario/recetario-mcp/interfaces/httpserver/middlewares"
)

func newProtectedRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.APIKeyAuth(apiKey))
	router.POST("/v1/mcp", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		headers    map[string]string
		wantStatus int
	}{
		{"no key configured passes", "", nil, http.StatusOK},
		{"missing key rejected", "secreto", nil, http.StatusUnauthorized},
		{"wrong key rejected", "secreto", map[string]string{"X-API-Key": "otro"}, http.StatusUnauthorized},
		{"x-api-key accepted", "secreto", map[string]string{"X-API-Key": "secreto"}, http.StatusOK},
		{"bearer accepted", "secreto", map[string]string{"Authorization": "Bearer secreto"}, http.StatusOK},
		{"bearer case-insensitive prefix", "secreto", map[string]string{"Authorization": "bearer secreto"}, http.StatusOK},
		{"raw authorization value accepted", "secreto", map[string]string{"Authorization": "secreto"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(tt.configured)

			req := httptest.NewRequest(http.MethodPost, "/v1/mcp", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.CORS())
	router.POST("/v1/mcp", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/mcp", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, 204, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
