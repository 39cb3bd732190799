// internal/models/product_test.go
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func discountedProduct(price, pct float64, start, end time.Time) *Product {
	id := uuid.New()
	return &Product{
		Price:              price,
		DiscountPercentage: pct,
		DiscountStartDate:  &start,
		DiscountEndDate:    &end,
		DiscountID:         &id,
	}
}

func TestEffectiveDiscountWithinWindow(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC)
	p := discountedProduct(100, 20, start, end)

	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 20.0, p.EffectiveDiscount(now))
	assert.Equal(t, 80.0, p.DiscountedPrice(now))
}

func TestEffectiveDiscountExpiredWindow(t *testing.T) {
	// A January-only discount evaluated on February 1st yields nothing,
	// even though the stored percentage is still 20.
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC)
	p := discountedProduct(100, 20, start, end)

	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Zero(t, p.EffectiveDiscount(now))
	assert.Equal(t, 100.0, p.DiscountedPrice(now))
}

func TestEffectiveDiscountBeforeWindow(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	p := discountedProduct(100, 20, start, end)

	now := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)
	assert.Zero(t, p.EffectiveDiscount(now))
}

func TestEffectiveDiscountWithoutAttachment(t *testing.T) {
	p := &Product{Price: 100, DiscountPercentage: 20}

	assert.Zero(t, p.EffectiveDiscount(time.Now()))
	assert.Equal(t, 100.0, p.DiscountedPrice(time.Now()))
}

func TestEffectiveDiscountMissingWindow(t *testing.T) {
	id := uuid.New()
	p := &Product{Price: 100, DiscountPercentage: 20, DiscountID: &id}

	assert.Zero(t, p.EffectiveDiscount(time.Now()))
}

func TestDiscountAppliesTo(t *testing.T) {
	d := &Discount{Categories: []string{string(CategoryGrocery), string(CategoryBeverages)}}
	assert.True(t, d.AppliesTo(CategoryGrocery))
	assert.False(t, d.AppliesTo(CategoryElectronics))

	all := &Discount{Categories: []string{CategoryAll}}
	assert.True(t, all.AppliesTo(CategoryClothing))
}

func TestDiscountActiveAt(t *testing.T) {
	d := &Discount{
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, d.ActiveAt(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.ActiveAt(d.StartDate))
	assert.True(t, d.ActiveAt(d.EndDate))
	assert.False(t, d.ActiveAt(time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, d.ActiveAt(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLineItemsTotal(t *testing.T) {
	items := LineItems{
		{ProductCode: "A", Quantity: 2, Price: 3.50},
		{ProductCode: "B", Quantity: 1, Price: 10.00},
	}
	assert.Equal(t, 17.0, items.Total())
}
