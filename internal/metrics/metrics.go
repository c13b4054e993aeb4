// Package metrics exposes sweep and settlement telemetry to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "settlement"

// Collector implements service.CheckerMetrics.
type Collector struct {
	registry *prometheus.Registry

	checks        *prometheus.CounterVec
	detected      *prometheus.CounterVec
	settled       *prometheus.CounterVec
	sweepDuration prometheus.Histogram
	sweepChecked  prometheus.Gauge
	sweepActive   prometheus.Gauge
	lastSweep     prometheus.Gauge
	httpRequests  *prometheus.CounterVec
}

// New registers all collectors, plus the Go and process collectors, on a
// private registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_checks_total",
			Help:      "Invoice checks by currency and outcome.",
		}, []string{"currency", "outcome"}),
		detected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_detected_total",
			Help:      "Newly recorded on-chain payments.",
		}, []string{"currency"}),
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_settled_total",
			Help:      "Invoices settled into donations.",
		}, []string{"currency"}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Wall time of a full invoice sweep.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		sweepChecked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_invoices_checked",
			Help:      "Invoices checked by the last sweep.",
		}),
		sweepActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_invoices_active",
			Help:      "Invoices with new activity in the last sweep.",
		}),
		lastSweep: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_last_completed_timestamp_seconds",
			Help:      "Unix time the last sweep finished.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
	}

	c.registry.MustRegister(
		c.checks,
		c.detected,
		c.settled,
		c.sweepDuration,
		c.sweepChecked,
		c.sweepActive,
		c.lastSweep,
		c.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) CheckCompleted(currency, outcome string) {
	c.checks.WithLabelValues(currency, outcome).Inc()
}

func (c *Collector) TransactionsDetected(currency string, n int) {
	c.detected.WithLabelValues(currency).Add(float64(n))
}

func (c *Collector) InvoiceSettled(currency string) {
	c.settled.WithLabelValues(currency).Inc()
}

func (c *Collector) SweepCompleted(elapsed time.Duration, checked, active int) {
	c.sweepDuration.Observe(elapsed.Seconds())
	c.sweepChecked.Set(float64(checked))
	c.sweepActive.Set(float64(active))
	c.lastSweep.SetToCurrentTime()
}

// ObserveRequest counts one served HTTP request. route is the matched
// pattern, never the raw path.
func (c *Collector) ObserveRequest(method, route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
