package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/recetario/recetario-mcp/domain/recetario"
	"github.com/recetario/recetario-mcp/domain/scraping"
	"github.com/recetario/recetario-mcp/domain/search"
	"github.com/recetario/recetario-mcp/infrastructure/brave"
	"github.com/recetario/recetario-mcp/infrastructure/config"
	"github.com/recetario/recetario-mcp/infrastructure/governor"
	"github.com/recetario/recetario-mcp/infrastructure/logger"
	"github.com/recetario/recetario-mcp/infrastructure/scraper"
	"github.com/recetario/recetario-mcp/interfaces/httpserver/middlewares"
	"github.com/recetario/recetario-mcp/interfaces/httpserver/routes"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("log_level", cfg.LogLevel).
		Bool("brave_configured", cfg.BraveAPIKey != "").
		Msg("Starting Recetario MCP service")

	// Monthly quota counter: shared via Redis when configured, otherwise
	// in-process only
	var quotaStore governor.QuotaStore
	if cfg.RedisURL != "" {
		redisStore, err := governor.NewRedisQuotaStore(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, quota counting falls back to in-process")
		} else {
			quotaStore = redisStore
		}
	}

	// Initialize infrastructure
	gov := governor.New(governor.Config{
		MaxRPS:       cfg.BraveMaxRPS,
		MonthlyQuota: cfg.BraveMonthlyQuota,
	}, quotaStore)
	braveClient := brave.NewClient(cfg.BraveAPIKey, cfg.SearchTimeout, gov)
	batchScraper := scraper.NewBatchScraper(
		scraper.NewFetcher(cfg.ScrapeTimeout),
		scraper.NewExtractor(),
	)

	// Initialize domain services
	searchService := search.NewService(braveClient)
	scrapingService := scraping.NewService(batchScraper)
	recetarioService := recetario.NewService(searchService, scrapingService)

	// Initialize routes
	recetarioMCP := routes.NewRecetarioMCP(recetarioService)
	mcpRoute := routes.NewMCPRoute(recetarioMCP)
	toolsRoute := routes.NewToolsRoute(recetarioService)

	// Setup HTTP server
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	// Health checks and metrics stay open even when an API key is set
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "recetario-mcp"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ready", "service": "recetario-mcp"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register tool routes
	v1 := router.Group("/v1")
	v1.Use(middlewares.APIKeyAuth(cfg.APIKey))
	mcpRoute.RegisterRouter(v1)
	toolsRoute.RegisterRouter(v1)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	log.Info().Str("address", addr).Msg("Server listening")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
