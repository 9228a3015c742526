package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
)

const namespace = "propertyhub"

// Metrics holds the collectors exported on /metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	paymentsRecorded *prometheus.CounterVec
	paymentAmount    *prometheus.CounterVec
	paymentFailures  *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	collectionRate   prometheus.Gauge
	outstanding      prometheus.Gauge
	tenants          prometheus.Gauge
	jobRuns          *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		paymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Payments recorded, by bill type.",
		}, []string{"bill_type"}),
		paymentAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_amount_total",
			Help:      "Sum of recorded payment amounts, by bill type.",
		}, []string{"bill_type"}),
		paymentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_failures_total",
			Help:      "Rejected or failed payment attempts, by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		collectionRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_rate_percent",
			Help:      "Share of this period's charges collected.",
		}),
		outstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outstanding_total",
			Help:      "Unpaid charges across all tenants.",
		}),
		tenants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tenants",
			Help:      "Registered tenants.",
		}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs, by job and result.",
		}, []string{"job", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.paymentsRecorded,
		m.paymentAmount,
		m.paymentFailures,
		m.httpRequests,
		m.httpDuration,
		m.collectionRate,
		m.outstanding,
		m.tenants,
		m.jobRuns,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) PaymentRecorded(p *domain.Payment) {
	if m == nil || p == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(string(p.Type)).Inc()
	m.paymentAmount.WithLabelValues(string(p.Type)).Add(p.Amount.InexactFloat64())
}

func (m *Metrics) PaymentFailed(reason string) {
	if m == nil {
		return
	}
	m.paymentFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// SetCollection publishes the latest dashboard aggregate
func (m *Metrics) SetCollection(s billing.DashboardSummary) {
	if m == nil {
		return
	}
	m.collectionRate.Set(float64(s.CollectionRate))
	m.outstanding.Set(s.TotalOutstanding.InexactFloat64())
	m.tenants.Set(float64(s.TotalTenants))
}

func (m *Metrics) JobRun(job string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
}
