package service

import (
	"context"
	"log/slog"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/store"
	"github.com/launchplanner/launchplanner-server/internal/validation"
)

// LeadService orchestrates lead capture and export.
type LeadService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewLeadService creates a new lead service.
func NewLeadService(store *store.Store, logger *slog.Logger) *LeadService {
	return &LeadService{
		store:     store,
		validator: validation.New(),
		logger:    logger,
	}
}

// CreateLeadRequest holds the fields of a captured lead.
type CreateLeadRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Email     string `json:"email" validate:"required,email,max=320"`
	Name      string `json:"name,omitempty" validate:"max=200"`
	Source    string `json:"source,omitempty" validate:"max=100"`
}

// ListLeads returns all leads, or only those of productID when it is set.
func (s *LeadService) ListLeads(ctx context.Context, productID string) ([]domain.Lead, error) {
	if productID != "" {
		return s.store.ListLeadsByProduct(ctx, productID)
	}
	return s.store.ListLeads(ctx)
}

// ExportCSV renders the same selection as ListLeads as CSV.
func (s *LeadService) ExportCSV(ctx context.Context, productID string) (string, error) {
	leads, err := s.ListLeads(ctx, productID)
	if err != nil {
		return "", err
	}

	s.logger.Debug("leads exported", "product_id", productID, "count", len(leads))
	return store.LeadsToCSV(leads), nil
}

// CreateLead validates the request and stores a new lead.
func (s *LeadService) CreateLead(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	lead, err := s.store.CreateLead(ctx, domain.Lead{
		ProductID: req.ProductID,
		Email:     req.Email,
		Name:      req.Name,
		Source:    req.Source,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead captured",
		"lead_id", lead.ID,
		"product_id", lead.ProductID,
		"source", lead.Source,
	)
	return lead, nil
}

// DeleteLead removes one lead.
func (s *LeadService) DeleteLead(ctx context.Context, leadID string) error {
	if leadID == "" {
		return errors.Validation("id is required")
	}
	if err := s.store.DeleteLead(ctx, leadID); err != nil {
		return err
	}

	s.logger.Info("lead deleted", "lead_id", leadID)
	return nil
}
