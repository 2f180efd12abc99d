package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(&sample{Name: "Bo", Rating: 3}))

	errs := Validate(&sample{Email: "nope", Rating: 6})
	assert.Equal(t, map[string]string{
		"name":   "required",
		"email":  "email",
		"rating": "lte",
	}, errs)
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ada@x.com"))
	assert.False(t, IsEmail("+2348026322742"))
	assert.False(t, IsEmail(""))
}
