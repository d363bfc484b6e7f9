package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the upstream SIS calls behind it.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	searchFanout     prometheus.Histogram
}

// NewMetricsService registers the collectors on a dedicated registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sis_request_duration_seconds",
		Help:    "Duration of upstream SIS API calls in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	upstreamTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sis_requests_total",
		Help: "Total number of upstream SIS API calls",
	}, []string{"endpoint", "status"})

	searchFanout := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_fanout_calls",
		Help:    "Number of upstream calls one course search decomposed into",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
	})

	registry.MustRegister(requestDuration, requestTotal, upstreamDuration, upstreamTotal, searchFanout)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		upstreamDuration: upstreamDuration,
		upstreamTotal:    upstreamTotal,
		searchFanout:     searchFanout,
	}
}

// Handler serves the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one handled HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveUpstreamRequest records one upstream SIS call. A zero status
// means the transport failed before a response arrived.
func (s *MetricsService) ObserveUpstreamRequest(endpoint string, status int, duration time.Duration) {
	labels := []string{endpoint, strconv.Itoa(status)}
	s.upstreamDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.upstreamTotal.WithLabelValues(labels...).Inc()
}

// ObserveSearchFanout records how many upstream calls one search produced.
func (s *MetricsService) ObserveSearchFanout(calls int) {
	s.searchFanout.Observe(float64(calls))
}
