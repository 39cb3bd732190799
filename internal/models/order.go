// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// LineItem is one product/quantity pair within an order. Price is the
// unit price captured at the time of sale.
type LineItem struct {
	ProductCode string  `json:"product_code"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// LineItems is the ordered line-item sequence of an order, stored as a
// single jsonb column. Encoding and decoding happen only here, at the
// storage boundary.
type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	if li == nil {
		return nil, nil
	}
	return json.Marshal(li)
}

func (li *LineItems) Scan(value interface{}) error {
	if value == nil {
		*li = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	default:
		return fmt.Errorf("unsupported line items column type %T", value)
	}
}

// Total is the sum of quantity times unit price across all items.
func (li LineItems) Total() float64 {
	var total float64
	for _, item := range li {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

type Order struct {
	BaseModel
	OrderNumber string      `json:"order_number" gorm:"uniqueIndex;size:20;not null"`
	CustomerID  *uuid.UUID  `json:"customer_id" gorm:"type:uuid;index"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	TotalAmount float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Items       LineItems   `json:"items" gorm:"type:jsonb"`

	// Relationships
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// ItemCount is the number of line items in the order.
func (o *Order) ItemCount() int {
	return len(o.Items)
}
