package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/events/{id}", "200"))
	RecordHTTPRequest("GET", "/events/{id}", http.StatusOK, 5*time.Millisecond, 512)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/events/{id}", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordEventWrite(t *testing.T) {
	before := testutil.ToFloat64(eventWritesTotal.WithLabelValues("create", "rejected"))
	RecordEventWrite("create", "rejected")
	assert.Equal(t, before+1, testutil.ToFloat64(eventWritesTotal.WithLabelValues("create", "rejected")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordEventWrite("update", "ok")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "events_writes_total")
}
