package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/id"
	"github.com/launchplanner/launchplanner-server/internal/sse"
)

// ListLeads returns every lead in store order.
func (s *Store) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.listLeads(ctx, "list", nil)
}

// ListLeadsByProduct returns the leads of one product in store order.
func (s *Store) ListLeadsByProduct(ctx context.Context, productID string) ([]domain.Lead, error) {
	return s.listLeads(ctx, "list_by_product", func(l *domain.Lead) bool {
		return l.ProductID == productID
	})
}

func (s *Store) listLeads(ctx context.Context, op string, keep func(*domain.Lead) bool) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := s.view(ctx, KeyLeads, op, func(txn *badger.Txn) error {
		all, err := s.leads.load(txn)
		if err != nil {
			return err
		}
		if keep == nil {
			leads = all
		} else {
			leads = filter(all, keep)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// CreateLead assigns an id and creation timestamp and appends the lead.
func (s *Store) CreateLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	if lead.Email == "" {
		s.metrics.RecordStoreOp(KeyLeads, "create", resultOf(errors.ErrValidation))
		return nil, errors.Validation("email is required")
	}

	leadID, err := id.Generate(id.LeadPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to generate lead id")
	}

	lead.ID = leadID
	lead.CreatedAt = s.now().UTC()

	err = s.update(ctx, KeyLeads, "create", func(txn *badger.Txn) error {
		if err := s.productExists(txn, lead.ProductID); err != nil {
			return err
		}
		leads, err := s.leads.load(txn)
		if err != nil {
			return err
		}
		return s.leads.save(txn, append(leads, lead))
	})
	if err != nil {
		return nil, err
	}

	s.eventEmitter.Emit(sse.NewLeadCreatedEvent(&lead))
	return &lead, nil
}

// DeleteLead removes exactly one lead.
func (s *Store) DeleteLead(ctx context.Context, leadID string) error {
	var removed []domain.Lead
	err := s.update(ctx, KeyLeads, "delete", func(txn *badger.Txn) error {
		leads, err := s.leads.load(txn)
		if err != nil {
			return err
		}
		var kept []domain.Lead
		kept, removed = partition(leads, func(l *domain.Lead) bool { return l.ID == leadID })
		if len(removed) == 0 {
			return errors.NotFoundf("lead %s not found", leadID)
		}
		return s.leads.save(txn, kept)
	})
	if err != nil {
		return err
	}

	s.eventEmitter.Emit(sse.NewLeadDeletedEvent(leadID, removed[0].ProductID))
	return nil
}
