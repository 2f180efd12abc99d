package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := NewValidationError(map[string]string{"rating": "lte", "name": "required"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "invalid input: name=required, rating=lte", err.Error())
}

func TestIsProjectCategory(t *testing.T) {
	assert.True(t, IsProjectCategory("Web Development"))
	assert.True(t, IsProjectCategory("Other"))
	assert.False(t, IsProjectCategory("web development"))
	assert.False(t, IsProjectCategory(""))
}
