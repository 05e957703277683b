package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))
	assert.NoError(t, NewValidationError([]string{}))

	err := NewValidationError([]string{"amount must be positive"})
	require.Error(t, err)
	assert.Equal(t, "invalid transaction: amount must be positive", err.Error())

	err = NewValidationError([]string{"amount must be positive", "unknown category"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problems")
	assert.Contains(t, err.Error(), "unknown category")

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 2)
}

func TestUserErrorUnwraps(t *testing.T) {
	inner := errors.New("permission denied")
	err := NewUserError("could not open storage", inner)

	assert.Contains(t, err.Error(), "could not open storage")
	assert.ErrorIs(t, err, inner)

	bare := NewUserError("nothing to do", nil)
	assert.Equal(t, "nothing to do", bare.Error())
}
