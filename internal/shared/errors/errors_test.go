package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrorTypeValidation, GetType(Validationf("flights must be positive, got %d", 0)))
	assert.Equal(t, ErrorTypeExternal, GetType(WrapExternal("write csv", fs.ErrPermission)))
	assert.Equal(t, ErrorTypeInternal, GetType(errors.New("plain")))

	wrapped := fmt.Errorf("generate: %w", Validation("bad range"))
	assert.Equal(t, ErrorTypeValidation, GetType(wrapped))
	assert.True(t, Is(wrapped, ErrorTypeValidation))
	assert.False(t, Is(wrapped, ErrorTypeInternal))
}

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	err := WrapExternal("failed to create output directory", fs.ErrPermission)

	assert.Equal(t, "failed to create output directory: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "method PUT not allowed", MethodNotAllowed("PUT").Error())
}
