package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenance_ReconcileCleanStore(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	p := ts.createProduct(t)

	_, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "x"})
	require.NoError(t, err)

	report, err := ts.maintenance.Reconcile(ctx, false)
	require.NoError(t, err)
	assert.False(t, report.DryRun)
	assert.Zero(t, report.Removed())

	stats, err := ts.maintenance.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 1, stats.Goals)
	assert.Equal(t, 0, stats.Leads)
}
