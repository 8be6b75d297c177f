package store

import (
	"context"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/id"
	"github.com/launchplanner/launchplanner-server/internal/sse"
)

// ProductDeletion reports what a product delete removed.
type ProductDeletion struct {
	ProductID    string
	GoalsRemoved int
	LeadsRemoved int
}

// ListProducts returns every product in store order.
func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.view(ctx, KeyProducts, "list", func(txn *badger.Txn) error {
		var err error
		products, err = s.products.load(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	err := s.view(ctx, KeyProducts, "get", func(txn *badger.Txn) error {
		products, err := s.products.load(txn)
		if err != nil {
			return err
		}
		var ok bool
		if product, ok = s.products.find(products, productID); !ok {
			return errors.NotFoundf("product %s not found", productID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct assigns an id and timestamps, appends the product and persists
// the collection. Fields left empty by the caller get their defaults.
func (s *Store) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	productID, err := id.Generate(id.ProductPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to generate product id")
	}

	product.ID = productID
	product.InitTimestamps(s.now())
	product.ApplyDefaults()
	if err := product.Validate(); err != nil {
		s.metrics.RecordStoreOp(KeyProducts, "create", resultOf(err))
		return nil, err
	}

	err = s.update(ctx, KeyProducts, "create", func(txn *badger.Txn) error {
		products, err := s.products.load(txn)
		if err != nil {
			return err
		}
		return s.products.save(txn, append(products, product))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("product stored", slog.String("product_id", product.ID))
	s.eventEmitter.Emit(sse.NewProductCreatedEvent(&product))
	return &product, nil
}

// UpdateProduct merges the non-nil fields of upd into the product and
// refreshes its update timestamp. Nothing is written when the id is unknown
// or the merged product is invalid.
func (s *Store) UpdateProduct(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error) {
	var updated domain.Product
	err := s.update(ctx, KeyProducts, "update", func(txn *badger.Txn) error {
		products, err := s.products.load(txn)
		if err != nil {
			return err
		}
		i := s.products.indexOf(products, productID)
		if i < 0 {
			return errors.NotFoundf("product %s not found", productID)
		}

		updated = products[i]
		upd.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		updated.Touch(s.now())

		products[i] = updated
		return s.products.save(txn, products)
	})
	if err != nil {
		return nil, err
	}

	s.eventEmitter.Emit(sse.NewProductUpdatedEvent(&updated))
	return &updated, nil
}

// DeleteProduct removes the product together with every goal and lead that
// references it. All three collections are written in one transaction, so
// either everything is removed or nothing is.
func (s *Store) DeleteProduct(ctx context.Context, productID string) (*ProductDeletion, error) {
	result := &ProductDeletion{ProductID: productID}

	err := s.update(ctx, KeyProducts, "delete", func(txn *badger.Txn) error {
		products, err := s.products.load(txn)
		if err != nil {
			return err
		}
		remaining, removed := partition(products, func(p *domain.Product) bool { return p.ID == productID })
		if len(removed) == 0 {
			return errors.NotFoundf("product %s not found", productID)
		}

		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		keptGoals, removedGoals := partition(goals, func(g *domain.Goal) bool { return g.ProductID == productID })

		leads, err := s.leads.load(txn)
		if err != nil {
			return err
		}
		keptLeads, removedLeads := partition(leads, func(l *domain.Lead) bool { return l.ProductID == productID })

		if err := s.products.save(txn, remaining); err != nil {
			return err
		}
		if len(removedGoals) > 0 {
			if err := s.goals.save(txn, keptGoals); err != nil {
				return err
			}
		}
		if len(removedLeads) > 0 {
			if err := s.leads.save(txn, keptLeads); err != nil {
				return err
			}
		}

		result.GoalsRemoved = len(removedGoals)
		result.LeadsRemoved = len(removedLeads)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.eventEmitter.Emit(sse.NewProductDeletedEvent(productID, result.GoalsRemoved, result.LeadsRemoved))
	return result, nil
}

// productExists checks the foreign key inside txn. Reading the products key
// also makes the caller's commit conflict with a concurrent product delete.
func (s *Store) productExists(txn *badger.Txn, productID string) error {
	products, err := s.products.load(txn)
	if err != nil {
		return err
	}
	if s.products.indexOf(products, productID) < 0 {
		return errors.Validationf("productId %s does not reference an existing product", productID)
	}
	return nil
}
