package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
)

func TestMetrics_Payments(t *testing.T) {
	m := New()
	m.PaymentRecorded(&domain.Payment{Type: domain.BillTypeRent, Amount: decimal.NewFromInt(6000)})
	m.PaymentRecorded(&domain.Payment{Type: domain.BillTypeRent, Amount: decimal.NewFromInt(6000)})
	m.PaymentFailed("invalid_input")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.paymentsRecorded.WithLabelValues("rent")))
	assert.Equal(t, float64(12000), testutil.ToFloat64(m.paymentAmount.WithLabelValues("rent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.paymentFailures.WithLabelValues("invalid_input")))
}

func TestMetrics_CollectionAndJobs(t *testing.T) {
	m := New()
	m.SetCollection(billing.DashboardSummary{TotalTenants: 3, CollectionRate: 42, TotalOutstanding: decimal.NewFromInt(9200)})
	m.JobRun("reset_billing_period", nil)
	m.JobRun("reset_billing_period", errors.New("boom"))

	assert.Equal(t, float64(42), testutil.ToFloat64(m.collectionRate))
	assert.Equal(t, float64(9200), testutil.ToFloat64(m.outstanding))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.tenants))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.jobRuns.WithLabelValues("reset_billing_period", "failure")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("tenants.me", http.MethodGet, http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `propertyhub_http_requests_total{method="GET",route="tenants.me",status="200"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PaymentRecorded(&domain.Payment{})
		m.PaymentFailed("x")
		m.ObserveRequest("r", "GET", 200, time.Second)
		m.SetCollection(billing.DashboardSummary{})
		m.JobRun("j", nil)
	})
}
