// internal/models/discount.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// CategoryAll is the sentinel making a discount applicable to every
// product category.
const CategoryAll = "all"

type Discount struct {
	BaseModel
	Name       string         `json:"name" gorm:"size:255;not null"`
	Type       DiscountType   `json:"type" gorm:"type:varchar(20);not null"`
	Percentage float64        `json:"percentage" gorm:"type:decimal(5,2);not null"`
	StartDate  time.Time      `json:"start_date" gorm:"not null"`
	EndDate    time.Time      `json:"end_date" gorm:"not null"`
	Categories pq.StringArray `json:"categories" gorm:"type:text[]"`
}

// ActiveAt reports whether the discount's validity window covers the
// given instant.
func (d *Discount) ActiveAt(now time.Time) bool {
	return !now.Before(d.StartDate) && !now.After(d.EndDate)
}

// AppliesTo reports whether the discount covers the given category,
// honoring the "all" sentinel.
func (d *Discount) AppliesTo(category ProductCategory) bool {
	for _, c := range d.Categories {
		if c == CategoryAll || c == string(category) {
			return true
		}
	}
	return false
}
