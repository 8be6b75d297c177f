package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	domainerrors "github.com/launchplanner/launchplanner-server/internal/errors"
)

// LeadsCSVHeader is the first line of every leads export.
const LeadsCSVHeader = "ID,Product ID,Email,Name,Source,Created At"

// LeadsToCSV renders leads as comma separated text: the header, then one row
// per lead, joined by "\n" with no trailing newline. Values are written as is
// without quoting, so a comma inside a value shifts the columns.
func LeadsToCSV(leads []domain.Lead) string {
	rows := make([]string, 0, len(leads)+1)
	rows = append(rows, LeadsCSVHeader)
	for _, l := range leads {
		rows = append(rows, strings.Join([]string{
			l.ID,
			l.ProductID,
			l.Email,
			l.Name,
			l.Source,
			formatTimestamp(l.CreatedAt),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// formatTimestamp renders t the way it appears in the JSON collections.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// RawCollection returns the stored JSON array for key exactly as persisted,
// or "[]" when the key was never written.
func (s *Store) RawCollection(ctx context.Context, key string) ([]byte, error) {
	if !slices.Contains(Collections, key) {
		return nil, domainerrors.Validationf("unknown collection %q", key)
	}

	var raw []byte
	err := s.view(ctx, key, "dump", func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			raw = []byte("[]")
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}
