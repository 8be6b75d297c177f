package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/store"
)

type testServices struct {
	store       *store.Store
	products    *ProductService
	goals       *GoalService
	leads       *LeadService
	maintenance *MaintenanceService
}

// setupTestServices wires every service to one temp-dir store.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(filepath.Join(t.TempDir(), "data"), nil, store.NewNoopEmitter())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() }) //nolint:errcheck // Test cleanup

	return &testServices{
		store:       st,
		products:    NewProductService(st, logger),
		goals:       NewGoalService(st, logger),
		leads:       NewLeadService(st, logger),
		maintenance: NewMaintenanceService(st, logger),
	}
}

func validProductRequest() CreateProductRequest {
	return CreateProductRequest{
		Name:      "Widget",
		StartDate: "2025-05-10",
		EndDate:   "2025-08-01",
	}
}

func (ts *testServices) createProduct(t *testing.T) *domain.Product {
	t.Helper()
	p, err := ts.products.CreateProduct(context.Background(), validProductRequest())
	require.NoError(t, err)
	return p
}

func assertCode(t *testing.T, want errors.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, errors.CodeOf(err), "unexpected error: %v", err)
}

func ptr[T any](v T) *T {
	return &v
}
