package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	_, err := validate("short")
	assert.Error(t, err)

	_, err = validate(strings.Repeat("x", 73))
	assert.Error(t, err)

	p, err := validate("long enough")
	assert.NoError(t, err)
	assert.Equal(t, "long enough", p)
}
