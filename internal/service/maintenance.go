package service

import (
	"context"
	"log/slog"

	"github.com/launchplanner/launchplanner-server/internal/store"
)

// MaintenanceService runs repair passes over the stored collections.
type MaintenanceService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(store *store.Store, logger *slog.Logger) *MaintenanceService {
	return &MaintenanceService{store: store, logger: logger}
}

// Reconcile finds goals and leads whose product is gone and, unless dryRun
// is set, removes them.
func (s *MaintenanceService) Reconcile(ctx context.Context, dryRun bool) (*store.ReconcileReport, error) {
	report, err := s.store.Reconcile(ctx, dryRun)
	if err != nil {
		return nil, err
	}

	if report.Removed() > 0 {
		s.logger.Warn("orphaned records found",
			"dry_run", dryRun,
			"goals", len(report.OrphanGoalIDs),
			"leads", len(report.OrphanLeadIDs),
		)
	} else {
		s.logger.Info("reconcile found no orphans", "dry_run", dryRun)
	}
	return report, nil
}

// Stats returns the number of records in each collection.
func (s *MaintenanceService) Stats(ctx context.Context) (*store.CollectionStats, error) {
	return s.store.Stats(ctx)
}
