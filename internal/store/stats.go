package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"
)

// CollectionStats holds record counts per collection.
type CollectionStats struct {
	Products int `json:"products"`
	Goals    int `json:"goals"`
	Leads    int `json:"leads"`
}

// Stats counts the records of every collection from one consistent snapshot.
func (s *Store) Stats(ctx context.Context) (*CollectionStats, error) {
	stats := &CollectionStats{}
	err := s.view(ctx, KeyProducts, "stats", func(txn *badger.Txn) error {
		products, err := s.products.load(txn)
		if err != nil {
			return err
		}
		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		leads, err := s.leads.load(txn)
		if err != nil {
			return err
		}
		stats.Products = len(products)
		stats.Goals = len(goals)
		stats.Leads = len(leads)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
