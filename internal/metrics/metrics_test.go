package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStoreOp(t *testing.T) {
	m := New()

	m.RecordStoreOp("goals", "create", ResultOK)
	m.RecordStoreOp("goals", "create", ResultOK)
	m.RecordStoreOp("goals", "update", ResultConflict)

	assert.InDelta(t, 2, testutil.ToFloat64(m.storeOperations.WithLabelValues("goals", "create", ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.storeOperations.WithLabelValues("goals", "update", ResultConflict)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.storeConflicts.WithLabelValues("goals")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.storeConflicts.WithLabelValues("leads")), 0)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/api/goals/{id}/increment", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	for _, path := range []string{"/api/goals/goal-1/increment", "/api/goals/goal-2/increment"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/goals/{id}/increment", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/products", "200")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.RecordStoreOp("products", "delete", ResultOK)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `launchplanner_store_operations_total{collection="products",op="delete",result="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
