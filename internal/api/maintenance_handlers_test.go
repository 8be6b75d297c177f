package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplanner/launchplanner-server/internal/store"
)

func TestReconcile(t *testing.T) {
	ts := setupTestServer(t, Options{})
	p := ts.createProduct(t, "Widget")
	ts.createGoal(t, map[string]any{"productId": p.ID, "title": "x"})

	resp := ts.api.Post("/api/maintenance/reconcile?dryRun=true")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	report := decode[store.ReconcileReport](t, resp)
	assert.True(t, report.DryRun)
	assert.Empty(t, report.OrphanGoalIDs)
	assert.Empty(t, report.OrphanLeadIDs)
}
