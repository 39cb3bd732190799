// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// BeforeCreate assigns the primary key. IDs are generated in the
// application so every configured database dialect gets the same
// behavior.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type ProductCategory string

const (
	CategoryGrocery     ProductCategory = "grocery"
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryStationery  ProductCategory = "stationery"
	CategoryHousehold   ProductCategory = "household"
	CategoryBeverages   ProductCategory = "beverages"
)

// ProductCategories is the closed set of categories the catalog accepts.
var ProductCategories = []ProductCategory{
	CategoryGrocery,
	CategoryElectronics,
	CategoryClothing,
	CategoryStationery,
	CategoryHousehold,
	CategoryBeverages,
}

func ValidCategory(c ProductCategory) bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

type MembershipTier string

const (
	MembershipSilver   MembershipTier = "silver"
	MembershipGold     MembershipTier = "gold"
	MembershipPlatinum MembershipTier = "platinum"
)

type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "pending"
	ReturnStatusApproved ReturnStatus = "approved"
	ReturnStatusRejected ReturnStatus = "rejected"
)

type DiscountType string

const (
	DiscountTypeOccasional DiscountType = "occasional"
	DiscountTypeSeasonal   DiscountType = "seasonal"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleCashier UserRole = "cashier"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type PayrollStatus string

const (
	PayrollStatusUnpaid PayrollStatus = "unpaid"
	PayrollStatusPaid   PayrollStatus = "paid"
)
