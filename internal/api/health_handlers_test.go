package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t, Options{})
	ts.createProduct(t, "Widget")

	resp := ts.api.Get("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	health := decode[HealthResponse](t, resp)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Components["store"].Status)
	assert.Equal(t, "0 clients connected", health.Components["sse"].Message)
	require.NotNil(t, health.Records)
	assert.Equal(t, 1, health.Records.Products)
}

func TestHealthCheck_NoStore(t *testing.T) {
	ts := setupTestServer(t, Options{})
	ts.store = nil

	resp := ts.api.Get("/health")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	health := decode[HealthResponse](t, resp)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "store not configured", health.Components["store"].Message)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "0 clients", pluralize(0, "client"))
	assert.Equal(t, "1 client", pluralize(1, "client"))
	assert.Equal(t, "3 clients", pluralize(3, "client"))
}
