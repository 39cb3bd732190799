// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProductCode(t *testing.T) {
	type sample struct {
		Code string `validate:"required,product_code"`
	}

	valid := []string{"P1", "SKU-100", "A2-B3-C4", "42"}
	for _, code := range valid {
		assert.NoError(t, ValidateStruct(&sample{Code: code}), code)
	}

	invalid := []string{"p1", "A", "-SKU", "SKU 100", "sku-100"}
	for _, code := range invalid {
		assert.Error(t, ValidateStruct(&sample{Code: code}), code)
	}
}

func TestValidateStrongPassword(t *testing.T) {
	type sample struct {
		Password string `validate:"required,strong_password"`
	}

	assert.NoError(t, ValidateStruct(&sample{Password: "Sup3rSecret!"}))
	assert.Error(t, ValidateStruct(&sample{Password: "short1!"}))
	assert.Error(t, ValidateStruct(&sample{Password: "alllowercase1!"}))
	assert.Error(t, ValidateStruct(&sample{Password: "NoDigitsHere!"}))
}

func TestGetValidationErrors(t *testing.T) {
	type sample struct {
		Name  string `validate:"required,min=2"`
		Email string `validate:"required,email"`
	}

	err := ValidateStruct(&sample{Name: "x", Email: "not-an-email"})
	errors := GetValidationErrors(err)

	assert.Len(t, errors, 2)
	assert.Equal(t, "name", errors[0].Field)
	assert.Equal(t, "email", errors[1].Field)
}

func TestGetValidationErrorsNilError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
