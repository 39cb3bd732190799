// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

// WalkInCustomerName is the display name used for orders carrying no
// customer reference.
const WalkInCustomerName = "Walk-in Customer"

type OrderService struct {
	db         *gorm.DB
	maxRetries int
}

type SaleLineItem struct {
	ProductCode string `json:"product_code" validate:"required,product_code"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

type CreateSaleRequest struct {
	CustomerID  *uuid.UUID     `json:"customer_id,omitempty"`
	TotalAmount float64        `json:"total_amount" validate:"required,gt=0"`
	Items       []SaleLineItem `json:"items" validate:"required,min=1,dive"`
}

// SaleSummary is one row of the delivered-sales listing.
type SaleSummary struct {
	ID           uuid.UUID          `json:"id"`
	OrderNumber  string             `json:"order_number"`
	CustomerName string             `json:"customer_name"`
	ItemCount    int                `json:"item_count"`
	TotalAmount  float64            `json:"total_amount"`
	Status       models.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending out_for_delivery delivered cancelled"`
}

func NewOrderService(db *gorm.DB, maxRetries int) *OrderService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &OrderService{
		db:         db,
		maxRetries: maxRetries,
	}
}

// CreateSale commits a sale as a single atomic unit: validates stock
// for every line item in sequence order, inserts the order and
// decrements stock, all inside one transaction. On any failure nothing
// is written. A lost update on a stock counter rolls the transaction
// back and the whole sequence is retried up to the configured attempt
// count.
func (s *OrderService) CreateSale(req *CreateSaleRequest) (*models.Order, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order *models.Order
	var err error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		order, err = s.commitSale(req)
		if !errors.Is(err, ErrStockConflict) {
			break
		}
	}

	return order, err
}

func (s *OrderService) commitSale(req *CreateSaleRequest) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		// Resolve and check every line item first, in request order,
		// so the first invalid item is the one reported. Quantities
		// accumulate per product code: a sale may list the same
		// product on several lines, and the check has to hold for
		// their sum or the decrements below cannot all succeed.
		items := make(models.LineItems, 0, len(req.Items))
		requested := make(map[string]int, len(req.Items))
		for _, line := range req.Items {
			var product models.Product
			if err := tx.Where("product_code = ? AND status <> ?", line.ProductCode, models.ProductStatusInactive).
				First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductCode)
				}
				return fmt.Errorf("database error: %w", err)
			}

			requested[product.ProductCode] += line.Quantity
			if product.StockQuantity < requested[product.ProductCode] {
				return &InsufficientStockError{
					ProductCode: product.ProductCode,
					Requested:   requested[product.ProductCode],
					Available:   product.StockQuantity,
				}
			}

			items = append(items, models.LineItem{
				ProductCode: product.ProductCode,
				Quantity:    line.Quantity,
				Price:       product.DiscountedPrice(now),
			})
		}

		orderNumber, err := utils.GenerateOrderNumber()
		if err != nil {
			return fmt.Errorf("failed to generate order number: %w", err)
		}

		order = models.Order{
			OrderNumber: orderNumber,
			CustomerID:  req.CustomerID,
			Status:      models.OrderStatusDelivered,
			TotalAmount: req.TotalAmount,
			Items:       items,
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Decrement stock with a conditional update so the check and
		// the write are one statement. A zero-row result means another
		// sale drained the stock after our check passed.
		for _, line := range req.Items {
			result := tx.Model(&models.Product{}).
				Where("product_code = ? AND stock_quantity >= ?", line.ProductCode, line.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))

			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrStockConflict
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListSales returns delivered orders newest first, each joined to the
// customer's display name.
func (s *OrderService) ListSales(params utils.PaginationParams) ([]SaleSummary, int64, error) {
	query := s.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusDelivered)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	var orders []models.Order
	if err := query.Preload("Customer").
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB { return utils.ApplyPagination(db, params) }).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sales: %w", err)
	}

	sales := make([]SaleSummary, 0, len(orders))
	for _, order := range orders {
		name := WalkInCustomerName
		if order.Customer != nil {
			name = order.Customer.Name
		}
		sales = append(sales, SaleSummary{
			ID:           order.ID,
			OrderNumber:  order.OrderNumber,
			CustomerName: name,
			ItemCount:    order.ItemCount(),
			TotalAmount:  order.TotalAmount,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt,
		})
	}

	return sales, total, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Customer").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrdersByStatus(status models.OrderStatus, params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	if err := query.Preload("Customer").
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB { return utils.ApplyPagination(db, params) }).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus moves a pending order along its delivery
// lifecycle. Line items are immutable history and never change here.
func (s *OrderService) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &order, nil
}
