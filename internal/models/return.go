// internal/models/return.go
package models

import (
	"github.com/google/uuid"
)

// Return is a contested delivered order. Approving a return does not
// restock inventory.
type Return struct {
	BaseModel
	OrderID    uuid.UUID    `json:"order_id" gorm:"type:uuid;not null;index"`
	CustomerID *uuid.UUID   `json:"customer_id" gorm:"type:uuid;index"`
	Amount     float64      `json:"amount" gorm:"type:decimal(10,2);not null"`
	Reason     string       `json:"reason" gorm:"type:text"`
	Status     ReturnStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	Order    Order     `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
