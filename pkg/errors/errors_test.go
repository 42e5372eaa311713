package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("product", 42)
	assert.Equal(t, "product with ID 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("quantity", 0, "must be at least 1")
	assert.Equal(t, "validation failed for field quantity: must be at least 1", err.Error())
	assert.True(t, IsValidationError(err))

	noField := NewValidationError("", nil, "bad query")
	assert.Equal(t, "validation failed: bad query", noField.Error())
}

func TestStorageErrors(t *testing.T) {
	cause := New("disk full")

	ioErr := WrapIO("write", "/tmp/cart-storage.yaml", cause)
	require.Error(t, ioErr)
	assert.True(t, IsStorageError(ioErr))
	assert.ErrorIs(t, ioErr, ErrStorage)

	stErr := WrapStorage("save", "cart-storage", cause)
	require.Error(t, stErr)
	assert.True(t, IsStorageError(stErr))
	assert.Contains(t, stErr.Error(), "cart-storage")

	var typed *StorageError
	require.True(t, As(stErr, &typed))
	assert.Equal(t, "save", typed.Operation)
	assert.Equal(t, cause, typed.Err)
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, WrapIO("read", "x", nil))
	assert.NoError(t, WrapParse("yaml", "x", nil))
	assert.NoError(t, WrapStorage("load", "x", nil))
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("unexpected node")
	err := WrapParse("yaml", "cart-storage", cause)
	assert.ErrorIs(t, err, cause)
}
