// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	ProductCode        string          `json:"product_code" gorm:"uniqueIndex;size:50;not null"`
	Name               string          `json:"name" gorm:"size:255;not null"`
	Price              float64         `json:"price" gorm:"type:decimal(10,2);not null"`
	Category           ProductCategory `json:"category" gorm:"type:varchar(50);index;not null"`
	StockQuantity      int             `json:"stock_quantity" gorm:"default:0;check:stock_quantity >= 0"`
	Status             ProductStatus   `json:"status" gorm:"type:varchar(20);default:'active';index"`
	ImageURL           string          `json:"image_url" gorm:"size:512"`
	DiscountPercentage float64         `json:"discount_percentage" gorm:"type:decimal(5,2);default:0"`
	DiscountStartDate  *time.Time      `json:"discount_start_date"`
	DiscountEndDate    *time.Time      `json:"discount_end_date"`
	DiscountID         *uuid.UUID      `json:"discount_id" gorm:"type:uuid;index"`

	// Relationships
	Discount *Discount `json:"discount,omitempty" gorm:"foreignKey:DiscountID"`
}

// EffectiveDiscount returns the discount percentage applicable at the
// given instant. Outside the validity window, or when no discount is
// attached, the stored percentage is ignored and 0 is returned.
func (p *Product) EffectiveDiscount(now time.Time) float64 {
	if p.DiscountID == nil {
		return 0
	}
	if p.DiscountStartDate == nil || p.DiscountEndDate == nil {
		return 0
	}
	if now.Before(*p.DiscountStartDate) || now.After(*p.DiscountEndDate) {
		return 0
	}
	return p.DiscountPercentage
}

// DiscountedPrice applies the effective discount to the unit price.
func (p *Product) DiscountedPrice(now time.Time) float64 {
	pct := p.EffectiveDiscount(now)
	if pct <= 0 {
		return p.Price
	}
	return p.Price * (1 - pct/100)
}
