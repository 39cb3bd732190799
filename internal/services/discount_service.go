// internal/services/discount_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type DiscountService struct {
	db *gorm.DB
}

type CreateDiscountRequest struct {
	Name       string              `json:"name" validate:"required,min=2,max=255"`
	Type       models.DiscountType `json:"type" validate:"required,oneof=occasional seasonal"`
	Percentage float64             `json:"percentage" validate:"required,gt=0,max=100"`
	StartDate  time.Time           `json:"start_date" validate:"required"`
	EndDate    time.Time           `json:"end_date" validate:"required"`
	Categories []string            `json:"categories" validate:"required,min=1"`
}

func NewDiscountService(db *gorm.DB) *DiscountService {
	return &DiscountService{db: db}
}

func (s *DiscountService) CreateDiscount(req *CreateDiscountRequest) (*models.Discount, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	for _, category := range req.Categories {
		if category == models.CategoryAll {
			continue
		}
		if !models.ValidCategory(models.ProductCategory(category)) {
			return nil, fmt.Errorf("unknown category: %s", category)
		}
	}

	discount := &models.Discount{
		Name:       req.Name,
		Type:       req.Type,
		Percentage: req.Percentage,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Categories: pq.StringArray(req.Categories),
	}

	if err := s.db.Create(discount).Error; err != nil {
		return nil, fmt.Errorf("failed to create discount: %w", err)
	}

	return discount, nil
}

func (s *DiscountService) GetDiscount(id uuid.UUID) (*models.Discount, error) {
	var discount models.Discount
	if err := s.db.First(&discount, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &discount, nil
}

func (s *DiscountService) ListDiscounts(params utils.PaginationParams) ([]models.Discount, int64, error) {
	query := s.db.Model(&models.Discount{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count discounts: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "percentage", "start_date", "end_date"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var discounts []models.Discount
	if err := query.Find(&discounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch discounts: %w", err)
	}

	return discounts, total, nil
}

// DeleteDiscount removes a discount and detaches it from every product
// referencing it. The products' percentage and window fields reset in
// the same transaction so no product keeps a dangling discount value.
func (s *DiscountService) DeleteDiscount(id uuid.UUID) error {
	discount, err := s.GetDiscount(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("discount_id = ?", discount.ID).
			Updates(map[string]interface{}{
				"discount_id":         nil,
				"discount_percentage": 0,
				"discount_start_date": nil,
				"discount_end_date":   nil,
			}).Error; err != nil {
			return fmt.Errorf("failed to detach discount from products: %w", err)
		}

		if err := tx.Delete(discount).Error; err != nil {
			return fmt.Errorf("failed to delete discount: %w", err)
		}

		return nil
	})
}
