// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	ProductCode   string                 `json:"product_code" validate:"required,product_code"`
	Name          string                 `json:"name" validate:"required,min=2,max=255"`
	Price         float64                `json:"price" validate:"required,gt=0"`
	Category      models.ProductCategory `json:"category" validate:"required"`
	StockQuantity int                    `json:"stock_quantity" validate:"min=0"`
	ImageURL      string                 `json:"image_url,omitempty"`
}

type UpdateProductRequest struct {
	Name          string               `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Price         float64              `json:"price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity *int                 `json:"stock_quantity,omitempty"`
	Status        models.ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	ImageURL      string               `json:"image_url,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Category   models.ProductCategory
	Status     *models.ProductStatus
	IncludeAll bool
	InStock    *bool
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("unknown category: %s", req.Category)
	}

	var existing int64
	if err := s.db.Model(&models.Product{}).
		Where("product_code = ?", req.ProductCode).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("product code %s already exists", req.ProductCode)
	}

	product := &models.Product{
		ProductCode:   req.ProductCode,
		Name:          req.Name,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Status:        models.ProductStatusActive,
		ImageURL:      req.ImageURL,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// FindProductByCode resolves a catalog code to a product, regardless
// of status.
func (s *ProductService) FindProductByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Discount").Where("product_code = ?", code).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, fmt.Errorf("stock quantity cannot be negative")
		}
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// SearchProducts lists catalog products. Unless IncludeAll or an
// explicit status filter is set, inactive products are excluded so the
// default view stays sale-eligible.
func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Discount")

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	} else if !params.IncludeAll {
		query = query.Where("status = ?", models.ProductStatusActive)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(product_code) LIKE ?", searchTerm, searchTerm)
	}

	if params.InStock != nil && *params.InStock {
		query = query.Where("stock_quantity > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "stock_quantity", "product_code"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// ListActiveByCategory returns sale-eligible products in a category.
func (s *ProductService) ListActiveByCategory(category models.ProductCategory) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("status = ? AND category = ?", models.ProductStatusActive, category).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// AttachDiscount stamps a discount's percentage and validity window
// onto a product.
func (s *ProductService) AttachDiscount(productID, discountID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var discount models.Discount
	if err := s.db.First(&discount, discountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !discount.AppliesTo(product.Category) {
		return nil, fmt.Errorf("discount %s does not cover category %s", discount.Name, product.Category)
	}

	updates := map[string]interface{}{
		"discount_id":         discount.ID,
		"discount_percentage": discount.Percentage,
		"discount_start_date": discount.StartDate,
		"discount_end_date":   discount.EndDate,
	}
	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to attach discount: %w", err)
	}

	if err := s.db.First(&product, productID).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// RemoveDiscount clears the discount reference. The percentage and
// window fields reset in the same update so no stale value can ever
// look active again.
func (s *ProductService) RemoveDiscount(productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"discount_id":         nil,
		"discount_percentage": 0,
		"discount_start_date": nil,
		"discount_end_date":   nil,
	}
	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to remove discount: %w", err)
	}

	product.DiscountID = nil
	product.DiscountPercentage = 0
	product.DiscountStartDate = nil
	product.DiscountEndDate = nil
	return &product, nil
}
