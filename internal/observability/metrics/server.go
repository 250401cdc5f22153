package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics tracks MCP tool invocations and outbound documentation
// fetches on a private registry.
type ServerMetrics struct {
	registry *prometheus.Registry

	toolTotal    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
	toolInFlight prometheus.Gauge

	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec

	domainTotal *prometheus.CounterVec
}

func NewServerMetrics(service string) *ServerMetrics {
	registry := prometheus.NewRegistry()

	toolTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devdocs",
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "Total MCP tool invocations by tool and status.",
		},
		[]string{"service", "tool", "status"},
	)
	toolDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "devdocs",
			Subsystem: "mcp",
			Name:      "tool_call_duration_seconds",
			Help:      "MCP tool invocation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "tool"},
	)
	toolInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "devdocs",
			Subsystem: "mcp",
			Name:      "tool_calls_in_flight",
			Help:      "Number of in-flight MCP tool invocations.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	fetchTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devdocs",
			Subsystem: "fetch",
			Name:      "requests_total",
			Help:      "Total documentation fetches by status.",
		},
		[]string{"service", "status"},
	)
	fetchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "devdocs",
			Subsystem: "fetch",
			Name:      "request_duration_seconds",
			Help:      "Documentation fetch duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"service"},
	)
	domainTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devdocs",
			Subsystem: "pipeline",
			Name:      "classified_domain_total",
			Help:      "Classification outcomes by resolved domain.",
		},
		[]string{"service", "domain"},
	)

	registry.MustRegister(toolTotal, toolDuration, toolInFlight, fetchTotal, fetchDuration, domainTotal)

	return &ServerMetrics{
		registry:      registry,
		toolTotal:     toolTotal,
		toolDuration:  toolDuration,
		toolInFlight:  toolInFlight,
		fetchTotal:    fetchTotal,
		fetchDuration: fetchDuration,
		domainTotal:   domainTotal,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ServerMetrics) StartToolCall() {
	m.toolInFlight.Inc()
}

func (m *ServerMetrics) FinishToolCall(service, tool string, duration time.Duration, isError bool) {
	m.toolInFlight.Dec()

	status := "success"
	if isError {
		status = "error"
	}
	m.toolTotal.WithLabelValues(service, tool, status).Inc()
	m.toolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
}

func (m *ServerMetrics) ObserveFetch(service string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.fetchTotal.WithLabelValues(service, status).Inc()
	m.fetchDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *ServerMetrics) ObserveDomain(service, domain string) {
	m.domainTotal.WithLabelValues(service, domain).Inc()
}
