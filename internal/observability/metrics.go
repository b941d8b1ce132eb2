package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/bookfront/internal/platform/logger"
)

const namespace = "bookfront"

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	conversions *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	cacheLookup *prometheus.CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Current returns the process metrics, or nil when metrics are disabled.
func Current() *Metrics {
	return instance
}

// Init builds the process-wide registry once. Later calls return the same
// instance whatever they pass.
func Init(log *logger.Logger, enabled bool) *Metrics {
	initOnce.Do(func() {
		if !enabled {
			return
		}
		instance = NewMetrics()
		if log != nil {
			log.Info("prometheus metrics enabled")
		}
	})
	return instance
}

// NewMetrics builds an independent registry. Tests use it directly.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "HTTP requests currently being served.",
		}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Calls to the landing page API, by operation and status.",
		}, []string{"op", "status"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Landing page API latency.",
			Buckets:   []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"op"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversion flow outcomes, by page type and final state.",
		}, []string{"page_type", "state"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_actions_total",
			Help:      "Delivery and access actions, by action and outcome.",
		}, []string{"action", "outcome"}),
		cacheLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "landing_page_cache_lookups_total",
			Help:      "Landing page cache lookups, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.upstreamRequests,
		m.upstreamLatency,
		m.conversions,
		m.deliveries,
		m.cacheLookup,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

// ObserveUpstream records one API call. status 0 means the call never got a
// response.
func (m *Metrics) ObserveUpstream(op string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamRequests.WithLabelValues(op, label).Inc()
	m.upstreamLatency.WithLabelValues(op).Observe(dur.Seconds())
}

func (m *Metrics) ObserveConversion(pageType, state string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(pageType, state).Inc()
}

func (m *Metrics) ObserveDelivery(action, outcome string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookup.WithLabelValues(result).Inc()
}
