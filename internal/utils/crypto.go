// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateOrderNumber returns a receipt-style order number, e.g.
// POS-4F7K2M9QT1.
func GenerateOrderNumber() (string, error) {
	randomPart, err := GenerateRandomString(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("POS-%s", randomPart), nil
}

// FormatCurrency renders an amount with a fixed two-decimal-place
// dollar prefix for dashboard display.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
