package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertMetrics_ObserveEvaluation(t *testing.T) {
	registry := NewRegistry()
	m := NewAlertMetrics(registry).(*alertMetrics)

	m.ObserveEvaluation(10, 3, 2, 4, 1)
	m.ObserveEvaluation(5, 1, 0, 0, 0)

	assert.InDelta(t, 15, testutil.ToFloat64(m.evaluated), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.matched), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.skipped.WithLabelValues(SkipReasonUnresolved)), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.skipped.WithLabelValues(SkipReasonNoData)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.skipped.WithLabelValues(SkipReasonFailed)), 0)
}

func TestAlertMetrics_Results(t *testing.T) {
	m := NewAlertMetrics(NewRegistry()).(*alertMetrics)

	m.ObservePublish(true)
	m.ObservePublish(true)
	m.ObservePublish(false)
	m.ObserveDelivery(false)
	m.ObserveFeedImport(120, true)
	m.ObserveFeedImport(0, false)

	assert.InDelta(t, 2, testutil.ToFloat64(m.published.WithLabelValues("true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.published.WithLabelValues("false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.delivered.WithLabelValues("false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.feedImports.WithLabelValues("false")), 0)
	assert.InDelta(t, 120, testutil.ToFloat64(m.stations), 0, "failed import keeps the last count")
}

func TestHandler_ExposesAlertMetrics(t *testing.T) {
	registry := NewRegistry()
	NewAlertMetrics(registry).ObservePublish(true)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fuelradar_alert_events_published_total{success="true"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
