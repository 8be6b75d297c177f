package store

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"

	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/metrics"
)

func TestTranslateError(t *testing.T) {
	notFound := errors.NotFound("product not found")

	tests := []struct {
		name     string
		in       error
		wantCode errors.Code
		same     bool
	}{
		{name: "domain error passes through", in: notFound, wantCode: errors.CodeNotFound, same: true},
		{name: "conflict", in: badger.ErrConflict, wantCode: errors.CodeConflict},
		{name: "anything else is a store failure", in: stderrors.New("disk on fire"), wantCode: errors.CodeStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in, KeyProducts, "create")

			assert.Equal(t, tt.wantCode, errors.CodeOf(got))
			assert.ErrorIs(t, got, tt.in)
			if tt.same {
				assert.Same(t, tt.in, got)
			}
		})
	}

	assert.NoError(t, translateError(nil, KeyGoals, "list"))
	assert.ErrorIs(t, translateError(context.Canceled, KeyLeads, "list"), context.Canceled)
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, metrics.ResultOK, resultOf(nil))
	assert.Equal(t, metrics.ResultNotFound, resultOf(errors.NotFound("x")))
	assert.Equal(t, metrics.ResultInvalid, resultOf(errors.Validation("x")))
	assert.Equal(t, metrics.ResultConflict, resultOf(errors.Conflict("x")))
	assert.Equal(t, metrics.ResultError, resultOf(stderrors.New("x")))
}
