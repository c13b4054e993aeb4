package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := New()

	c.CheckCompleted("BTC", "ok")
	c.CheckCompleted("BTC", "ok")
	c.CheckCompleted("ETH", "error")
	c.TransactionsDetected("BTC", 3)
	c.InvoiceSettled("BTC")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.checks.WithLabelValues("BTC", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.checks.WithLabelValues("ETH", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.detected.WithLabelValues("BTC")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.settled.WithLabelValues("BTC")))
}

func TestCollector_Sweep(t *testing.T) {
	c := New()
	c.SweepCompleted(1500*time.Millisecond, 12, 4)

	assert.Equal(t, 12.0, testutil.ToFloat64(c.sweepChecked))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.sweepActive))
	assert.Greater(t, testutil.ToFloat64(c.lastSweep), 0.0)
	assert.Equal(t, 1, testutil.CollectAndCount(c.sweepDuration))
}

func TestCollector_ObserveRequest(t *testing.T) {
	c := New()
	c.ObserveRequest(http.MethodGet, "/api/v1/invoices/:id", 200)
	c.ObserveRequest(http.MethodGet, "", 404)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/v1/invoices/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	c.InvoiceSettled("ETH")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `settlement_invoices_settled_total{currency="ETH"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
