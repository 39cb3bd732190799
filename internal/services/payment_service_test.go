// internal/services/payment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountToCents(t *testing.T) {
	assert.Equal(t, int64(1999), amountToCents(19.99))
	assert.Equal(t, int64(1000), amountToCents(10.00))
	assert.Equal(t, int64(1), amountToCents(0.01))
	assert.Equal(t, int64(29), amountToCents(0.29))
	assert.Equal(t, int64(0), amountToCents(0))
}
