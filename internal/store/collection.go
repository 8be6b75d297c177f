package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/launchplanner/launchplanner-server/internal/domain"
)

// Collection reads and writes one JSON array of records stored under a single key.
// It only works inside a transaction owned by the caller, so several
// collections can change atomically.
type Collection[T any] struct {
	name string
	key  []byte
	idOf func(*T) string
}

func newCollection[T any](name string, idOf func(*T) string) *Collection[T] {
	return &Collection[T]{
		name: name,
		key:  []byte(name),
		idOf: idOf,
	}
}

func productID(p *domain.Product) string { return p.ID }
func goalID(g *domain.Goal) string       { return g.ID }
func leadID(l *domain.Lead) string       { return l.ID }

// load returns the whole collection. A key that was never written reads as
// an empty collection, never nil.
func (c *Collection[T]) load(txn *badger.Txn) ([]T, error) {
	item, err := txn.Get(c.key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}

	var items []T
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &items)
	}); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save replaces the whole collection.
func (c *Collection[T]) save(txn *badger.Txn, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := txn.Set(c.key, data); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

// indexOf returns the position of the record with the given id, or -1.
func (c *Collection[T]) indexOf(items []T, id string) int {
	for i := range items {
		if c.idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

// find returns a copy of the record with the given id.
func (c *Collection[T]) find(items []T, id string) (T, bool) {
	if i := c.indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// filter returns the records matching keep, in store order.
func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// partition splits items into those kept and those removed, preserving order.
func partition[T any](items []T, remove func(*T) bool) (kept, removed []T) {
	kept = make([]T, 0, len(items))
	for i := range items {
		if remove(&items[i]) {
			removed = append(removed, items[i])
		} else {
			kept = append(kept, items[i])
		}
	}
	return kept, removed
}
