// internal/services/return_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type ReturnService struct {
	db *gorm.DB
}

type CreateReturnRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Amount  float64   `json:"amount" validate:"required,gt=0"`
	Reason  string    `json:"reason" validate:"required,min=3"`
}

func NewReturnService(db *gorm.DB) *ReturnService {
	return &ReturnService{db: db}
}

// CreateReturn opens a return against a delivered order. Inventory is
// never restocked by a return.
func (s *ReturnService) CreateReturn(req *CreateReturnRequest) (*models.Return, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status != models.OrderStatusDelivered {
		return nil, fmt.Errorf("only delivered orders can be returned")
	}

	if req.Amount > order.TotalAmount {
		return nil, fmt.Errorf("return amount %.2f exceeds order total %.2f", req.Amount, order.TotalAmount)
	}

	ret := &models.Return{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Status:     models.ReturnStatusPending,
	}

	if err := s.db.Create(ret).Error; err != nil {
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	return ret, nil
}

func (s *ReturnService) GetReturn(id uuid.UUID) (*models.Return, error) {
	var ret models.Return
	if err := s.db.Preload("Order").Preload("Customer").First(&ret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReturnNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &ret, nil
}

func (s *ReturnService) ListReturns(params utils.PaginationParams) ([]models.Return, int64, error) {
	query := s.db.Model(&models.Return{}).Preload("Order").Preload("Customer")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count returns: %w", err)
	}

	allowedSortFields := []string{"created_at", "amount", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var returns []models.Return
	if err := query.Find(&returns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch returns: %w", err)
	}

	return returns, total, nil
}

// ResolveReturn approves or rejects a pending return.
func (s *ReturnService) ResolveReturn(id uuid.UUID, status models.ReturnStatus) (*models.Return, error) {
	if status != models.ReturnStatusApproved && status != models.ReturnStatusRejected {
		return nil, fmt.Errorf("invalid resolution status: %s", status)
	}

	ret, err := s.GetReturn(id)
	if err != nil {
		return nil, err
	}

	if ret.Status != models.ReturnStatusPending {
		return nil, fmt.Errorf("return is already resolved")
	}

	if err := s.db.Model(ret).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve return: %w", err)
	}

	return ret, nil
}
