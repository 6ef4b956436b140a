package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLabelsMetricsWithMuxPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := Observe(zerolog.Nop(), mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /v1/widgets/{id}", "200"))
	unmatchedBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "200"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/widgets/7", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /v1/widgets/{id}", "200"))
	unmatchedAfter := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unmatched", "200"))

	assert.Equal(t, before+1, after, "request should be counted under the matched pattern")
	assert.Equal(t, unmatchedBefore, unmatchedAfter, "matched request must not count as unmatched")
}

func TestObserveRecordsStatusCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handler := Observe(zerolog.Nop(), mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /v1/widgets/{id}", "404"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/widgets/404", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /v1/widgets/{id}", "404"))
	assert.Equal(t, before+1, after)
}
