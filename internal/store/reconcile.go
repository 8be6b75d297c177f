package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/sse"
)

// ReconcileReport lists the goals and leads whose product no longer exists.
type ReconcileReport struct {
	DryRun        bool     `json:"dryRun"`
	OrphanGoalIDs []string `json:"orphanGoalIds"`
	OrphanLeadIDs []string `json:"orphanLeadIds"`
}

// Removed reports how many records were (or would be) removed.
func (r *ReconcileReport) Removed() int {
	return len(r.OrphanGoalIDs) + len(r.OrphanLeadIDs)
}

// Reconcile finds goals and leads that reference a missing product. Unless
// dryRun is set they are removed in a single transaction.
func (s *Store) Reconcile(ctx context.Context, dryRun bool) (*ReconcileReport, error) {
	report := &ReconcileReport{
		DryRun:        dryRun,
		OrphanGoalIDs: []string{},
		OrphanLeadIDs: []string{},
	}

	scan := func(txn *badger.Txn) error {
		products, err := s.products.load(txn)
		if err != nil {
			return err
		}
		known := make(map[string]struct{}, len(products))
		for _, p := range products {
			known[p.ID] = struct{}{}
		}
		orphaned := func(productID string) bool {
			_, ok := known[productID]
			return !ok
		}

		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		keptGoals, orphanGoals := partition(goals, func(g *domain.Goal) bool { return orphaned(g.ProductID) })

		leads, err := s.leads.load(txn)
		if err != nil {
			return err
		}
		keptLeads, orphanLeads := partition(leads, func(l *domain.Lead) bool { return orphaned(l.ProductID) })

		report.OrphanGoalIDs = report.OrphanGoalIDs[:0]
		for _, g := range orphanGoals {
			report.OrphanGoalIDs = append(report.OrphanGoalIDs, g.ID)
		}
		report.OrphanLeadIDs = report.OrphanLeadIDs[:0]
		for _, l := range orphanLeads {
			report.OrphanLeadIDs = append(report.OrphanLeadIDs, l.ID)
		}

		if dryRun {
			return nil
		}
		if len(orphanGoals) > 0 {
			if err := s.goals.save(txn, keptGoals); err != nil {
				return err
			}
		}
		if len(orphanLeads) > 0 {
			if err := s.leads.save(txn, keptLeads); err != nil {
				return err
			}
		}
		return nil
	}

	var err error
	if dryRun {
		err = s.view(ctx, KeyProducts, "reconcile", scan)
	} else {
		err = s.update(ctx, KeyProducts, "reconcile", scan)
	}
	if err != nil {
		return nil, err
	}

	if !dryRun && report.Removed() > 0 {
		s.eventEmitter.Emit(sse.NewReconciledEvent(len(report.OrphanGoalIDs), len(report.OrphanLeadIDs)))
	}
	return report, nil
}
