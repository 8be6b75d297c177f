package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/launchplanner/launchplanner-server/internal/store"
)

func (s *Server) registerMaintenanceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "reconcile",
		Method:      http.MethodPost,
		Path:        "/api/maintenance/reconcile",
		Summary:     "Remove orphaned records",
		Description: "Finds goals and leads whose product no longer exists. With dryRun=true nothing is removed.",
		Tags:        []string{"Maintenance"},
	}, s.handleReconcile)
}

// ReconcileInput contains parameters for a reconcile pass.
type ReconcileInput struct {
	DryRun bool `query:"dryRun" doc:"Report orphans without removing them"`
}

// ReconcileOutput wraps the reconcile report for Huma.
type ReconcileOutput struct {
	Body store.ReconcileReport
}

func (s *Server) handleReconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	report, err := s.services.Maintenance.Reconcile(ctx, input.DryRun)
	if err != nil {
		return nil, err
	}
	return &ReconcileOutput{Body: *report}, nil
}
