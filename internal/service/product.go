package service

import (
	"context"
	"log/slog"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/store"
	"github.com/launchplanner/launchplanner-server/internal/validation"
)

// ProductService orchestrates product operations.
type ProductService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(store *store.Store, logger *slog.Logger) *ProductService {
	return &ProductService{
		store:     store,
		validator: validation.New(),
		logger:    logger,
	}
}

// CreateProductRequest holds the fields a client may set on a new product.
// The target quarter and year default to the quarter containing StartDate.
type CreateProductRequest struct {
	Name          string               `json:"name" validate:"required,min=1,max=200"`
	Description   string               `json:"description,omitempty" validate:"max=5000"`
	TargetQuarter domain.Quarter       `json:"targetQuarter,omitempty" validate:"omitempty,oneof=Q1 Q2 Q3 Q4"`
	TargetYear    int                  `json:"targetYear,omitempty" validate:"omitempty,gte=2000,lte=2100"`
	StartDate     string               `json:"startDate" validate:"required,isodate"`
	EndDate       string               `json:"endDate" validate:"required,isodate"`
	Status        domain.ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=planning in-progress launched"`
}

// ListProducts returns every product in store order.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.store.ListProducts(ctx)
}

// GetProduct returns one product.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, errors.Validation("id is required")
	}
	return s.store.GetProduct(ctx, productID)
}

// CreateProduct validates the request and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	product, err := s.store.CreateProduct(ctx, domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		TargetQuarter: req.TargetQuarter,
		TargetYear:    req.TargetYear,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		"product_id", product.ID,
		"name", product.Name,
		"target_quarter", product.TargetQuarter,
		"target_year", product.TargetYear,
	)
	return product, nil
}

// UpdateProduct applies a partial update. An update naming no field is
// rejected rather than silently bumping updatedAt.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error) {
	if productID == "" {
		return nil, errors.Validation("id is required")
	}
	if err := s.validator.Validate(upd); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, errors.Validation("update must set at least one field")
	}

	product, err := s.store.UpdateProduct(ctx, productID, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "product_id", product.ID, "status", product.Status)
	return product, nil
}

// DeleteProduct removes a product with its goals and leads.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) (*store.ProductDeletion, error) {
	if productID == "" {
		return nil, errors.Validation("id is required")
	}

	deletion, err := s.store.DeleteProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product deleted",
		"product_id", productID,
		"goals_removed", deletion.GoalsRemoved,
		"leads_removed", deletion.LeadsRemoved,
	)
	return deletion, nil
}
