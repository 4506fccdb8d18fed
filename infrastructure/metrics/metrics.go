package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Recetario MCP metrics - using explicit registration
var (
	// Request counters
	RequestsTotal *prometheus.CounterVec

	// Tool call counters
	ToolCallsTotal *prometheus.CounterVec

	// Tool duration histogram
	ToolDuration *prometheus.HistogramVec

	// Brave provider latency
	ProviderLatency *prometheus.HistogramVec

	// Governor admission denials
	AdmissionDenialsTotal *prometheus.CounterVec

	// Supermarket page scrape outcomes
	ScrapesTotal *prometheus.CounterVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recetario",
			Subsystem: "mcp",
			Name:      "requests_total",
			Help:      "Total number of MCP requests",
		},
		[]string{"method", "status"},
	)

	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recetario",
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "Total tool invocations",
		},
		[]string{"tool_name", "status"},
	)

	ToolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recetario",
			Subsystem: "mcp",
			Name:      "tool_duration_seconds",
			Help:      "Tool execution duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"tool_name"},
	)

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recetario",
			Subsystem: "mcp",
			Name:      "provider_latency_seconds",
			Help:      "Brave Search API response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	AdmissionDenialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recetario",
			Subsystem: "mcp",
			Name:      "admission_denials_total",
			Help:      "Search calls denied by the rate/quota governor",
		},
		[]string{"reason"},
	)

	ScrapesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recetario",
			Subsystem: "mcp",
			Name:      "scrapes_total",
			Help:      "Supermarket page scrapes by store and outcome",
		},
		[]string{"store", "status"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolDuration)
	prometheus.MustRegister(ProviderLatency)
	prometheus.MustRegister(AdmissionDenialsTotal)
	prometheus.MustRegister(ScrapesTotal)
	log.Info().Msg("MCP metrics registered with Prometheus")
}

// RecordRequest records an MCP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordToolCall records a tool invocation
func RecordToolCall(toolName, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	ToolCallsTotal.WithLabelValues(toolName, status).Inc()
	ToolDuration.WithLabelValues(toolName).Observe(durationSec)
}

// RecordProviderLatency records a search provider response time
func RecordProviderLatency(provider string, durationSec float64) {
	ProviderLatency.WithLabelValues(provider).Observe(durationSec)
}

// RecordAdmissionDenial records a governor denial
func RecordAdmissionDenial(reason string) {
	AdmissionDenialsTotal.WithLabelValues(reason).Inc()
}

// RecordScrape records a page scrape outcome
func RecordScrape(store, status string) {
	if store == "" {
		store = "unknown"
	}
	ScrapesTotal.WithLabelValues(store, status).Inc()
}
