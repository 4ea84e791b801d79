package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the engine's prometheus collectors behind a private
// prometheus.Registry so tests can run multiple instances.
type Registry struct {
	registry         *prometheus.Registry
	operationsTotal  *prometheus.CounterVec
	escrowedValue    *prometheus.GaugeVec
	callbackFailures prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates and registers all engine collectors.
func New() *Registry {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_operations_total",
		Help: "Engine operations by type and outcome",
	}, []string{"operation", "outcome"})

	escrowed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "escrow_pending_amount",
		Help: "Sum of escrowed amounts for pending authorizations, per asset",
	}, []string{"asset"})

	cbFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "escrow_callback_failures_total",
		Help: "Callback executions that failed and rolled back their operation",
	})

	httpReqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_http_requests_total",
		Help: "HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "escrow_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	r := prometheus.NewRegistry()
	r.MustRegister(ops, escrowed, cbFailures, httpReqs, httpDur)

	return &Registry{
		registry:         r,
		operationsTotal:  ops,
		escrowedValue:    escrowed,
		callbackFailures: cbFailures,
		httpRequests:     httpReqs,
		httpDuration:     httpDur,
	}
}

// Handler serves the /metrics endpoint.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Operation records one engine operation outcome.
func (m *Registry) Operation(op, outcome string) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(op, outcome).Inc()
}

// EscrowDelta adjusts the pending-escrow gauge for an asset.
func (m *Registry) EscrowDelta(asset string, delta int64) {
	if m == nil {
		return
	}
	m.escrowedValue.WithLabelValues(asset).Add(float64(delta))
}

// CallbackFailure records a failed callback execution.
func (m *Registry) CallbackFailure() {
	if m == nil {
		return
	}
	m.callbackFailures.Inc()
}

// HTTPRequest records one served HTTP request.
func (m *Registry) HTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
