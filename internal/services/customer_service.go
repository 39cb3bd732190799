// internal/services/customer_service.go
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

type CustomerService struct {
	db *gorm.DB
}

type CreateCustomerRequest struct {
	Name       string                `json:"name" validate:"required,min=2,max=255"`
	Email      string                `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string                `json:"phone,omitempty" validate:"omitempty,max=50"`
	Membership models.MembershipTier `json:"membership,omitempty" validate:"omitempty,oneof=silver gold platinum"`
}

type UpdateCustomerRequest struct {
	Name       string                `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Email      string                `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string                `json:"phone,omitempty" validate:"omitempty,max=50"`
	Membership models.MembershipTier `json:"membership,omitempty" validate:"omitempty,oneof=silver gold platinum"`
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	membership := req.Membership
	if membership == "" {
		membership = models.MembershipSilver
	}

	customer := &models.Customer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Membership: membership,
		TotalSpent: "0.00",
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) UpdateCustomer(id uuid.UUID, req *UpdateCustomerRequest) (*models.Customer, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Membership != "" {
		updates["membership"] = req.Membership
	}

	if len(updates) > 0 {
		if err := s.db.Model(customer).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
	}

	return customer, nil
}

func (s *CustomerService) DeleteCustomer(id uuid.UUID) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(customer).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) ListCustomers(params utils.PaginationParams) ([]models.Customer, int64, error) {
	query := s.db.Model(&models.Customer{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "membership"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return customers, total, nil
}

// AddSpent appends a sale amount to the customer's running total. This
// is a best-effort collaborator call made after a sale commits; it is
// deliberately not atomic with the sale itself.
func (s *CustomerService) AddSpent(id uuid.UUID, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}

	customer.AddSpent(amount)
	if err := s.db.Model(customer).Update("total_spent", customer.TotalSpent).Error; err != nil {
		return fmt.Errorf("failed to update total spent: %w", err)
	}
	return nil
}
