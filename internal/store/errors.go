package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/metrics"
)

// translateError maps Badger and codec failures onto the domain taxonomy.
// Domain errors returned from inside a transaction pass through unchanged.
func translateError(err error, collection, op string) error {
	if err == nil {
		return nil
	}

	var domainErr *errors.Error
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, badger.ErrConflict):
		return errors.Conflictf("%s were modified by another request, retry the %s", collection, op).WithCause(err)
	default:
		return errors.Wrapf(err, errors.CodeStore, "failed to %s %s", op, collection)
	}
}

func resultOf(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	switch errors.CodeOf(err) {
	case errors.CodeNotFound:
		return metrics.ResultNotFound
	case errors.CodeValidation:
		return metrics.ResultInvalid
	case errors.CodeConflict:
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}

func isStoreFailure(err error) bool {
	return err != nil && errors.CodeOf(err) == errors.CodeStore
}
