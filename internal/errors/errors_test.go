package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeStore, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := NotFoundf("goal %s not found", "goal-1")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, "goal goal-1 not found", err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, CodeStore, "failed to write products")

	assert.True(t, Is(err, ErrStore))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to write products: disk full", err.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeConflict, CodeOf(Conflict("busy")))
	assert.Equal(t, CodeInternal, CodeOf(stderrors.New("plain")))
	assert.Equal(t, CodeValidation, CodeOf(Wrapf(Validation("bad"), CodeValidation, "wrapped %d", 1)))
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	detailed := ErrValidation.WithDetails(map[string]string{"email": "is required"})

	assert.Nil(t, ErrValidation.Details)
	assert.NotNil(t, detailed.Details)
	assert.True(t, Is(detailed, ErrValidation))
}

func TestError_MarshalsAsAPIBody(t *testing.T) {
	err := Conflict("goals were modified by another request").WithCause(stderrors.New("txn conflict"))

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	assert.JSONEq(t, `{"error":"goals were modified by another request","code":"CONFLICT"}`, string(data))
	assert.Equal(t, http.StatusConflict, err.GetStatus())
}
