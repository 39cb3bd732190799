// internal/models/customer.go
package models

import (
	"fmt"
	"strconv"
)

type Customer struct {
	BaseModel
	Name       string         `json:"name" gorm:"size:255;not null"`
	Email      string         `json:"email" gorm:"size:255;index"`
	Phone      string         `json:"phone" gorm:"size:50"`
	Membership MembershipTier `json:"membership" gorm:"type:varchar(20);default:'silver';index"`
	TotalSpent string         `json:"total_spent" gorm:"size:20;default:'0.00'"`

	// Relationships
	Orders  []Order  `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
	Returns []Return `json:"returns,omitempty" gorm:"foreignKey:CustomerID"`
}

// SpentAmount parses the string-encoded running total. A malformed or
// empty value reads as zero rather than failing the caller.
func (c *Customer) SpentAmount() float64 {
	amount, err := strconv.ParseFloat(c.TotalSpent, 64)
	if err != nil {
		return 0
	}
	return amount
}

// AddSpent appends to the running total and re-encodes it with two
// fraction digits.
func (c *Customer) AddSpent(amount float64) {
	c.TotalSpent = fmt.Sprintf("%.2f", c.SpentAmount()+amount)
}
