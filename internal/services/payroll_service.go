// internal/services/payroll_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/database"
	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type PayrollService struct {
	db *gorm.DB
}

type CreateEmployeeRequest struct {
	Name     string    `json:"name" validate:"required,min=2,max=255"`
	Role     string    `json:"role" validate:"required,max=100"`
	Email    string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	Salary   float64   `json:"salary" validate:"required,gt=0"`
	JoinedAt time.Time `json:"joined_at,omitempty"`
}

type UpdateEmployeeRequest struct {
	Name   string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Role   string  `json:"role,omitempty" validate:"omitempty,max=100"`
	Email  string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Salary float64 `json:"salary,omitempty" validate:"omitempty,gt=0"`
}

func NewPayrollService(db *gorm.DB) *PayrollService {
	return &PayrollService{db: db}
}

func (s *PayrollService) CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	joinedAt := req.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}

	employee := &models.Employee{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		Salary:   req.Salary,
		JoinedAt: joinedAt,
	}

	if err := s.db.Create(employee).Error; err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

func (s *PayrollService) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &employee, nil
}

func (s *PayrollService) UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Salary > 0 {
		updates["salary"] = req.Salary
	}

	if len(updates) > 0 {
		if err := s.db.Model(employee).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update employee: %w", err)
		}
	}

	return employee, nil
}

func (s *PayrollService) DeleteEmployee(id uuid.UUID) error {
	employee, err := s.GetEmployee(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(employee).Error; err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *PayrollService) ListEmployees(params utils.PaginationParams) ([]models.Employee, int64, error) {
	query := s.db.Model(&models.Employee{})

	if params.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "role", "salary", "joined_at"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch employees: %w", err)
	}

	return employees, total, nil
}

// GeneratePayroll creates an unpaid payroll record per employee for
// the given month (YYYY-MM), skipping employees already covered. Each
// record's amount is the employee's current monthly salary.
func (s *PayrollService) GeneratePayroll(month string) ([]models.Payroll, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}

	var employees []models.Employee
	if err := s.db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	var created []models.Payroll
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		for _, employee := range employees {
			var existing int64
			if err := tx.Model(&models.Payroll{}).
				Where("employee_id = ? AND month = ?", employee.ID, month).
				Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to check existing payroll: %w", err)
			}
			if existing > 0 {
				continue
			}

			payroll := models.Payroll{
				EmployeeID: employee.ID,
				Month:      month,
				Amount:     employee.Salary,
				Status:     models.PayrollStatusUnpaid,
			}
			if err := tx.Create(&payroll).Error; err != nil {
				return fmt.Errorf("failed to create payroll record: %w", err)
			}
			created = append(created, payroll)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *PayrollService) MarkPaid(id uuid.UUID) (*models.Payroll, error) {
	var payroll models.Payroll
	if err := s.db.First(&payroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payroll record not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if payroll.Status == models.PayrollStatusPaid {
		return nil, fmt.Errorf("payroll record is already paid")
	}

	now := time.Now()
	if err := s.db.Model(&payroll).Updates(map[string]interface{}{
		"status":  models.PayrollStatusPaid,
		"paid_at": now,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to mark payroll paid: %w", err)
	}

	return &payroll, nil
}

func (s *PayrollService) ListPayrolls(month string, params utils.PaginationParams) ([]models.Payroll, int64, error) {
	query := s.db.Model(&models.Payroll{}).Preload("Employee")
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	allowedSortFields := []string{"created_at", "month", "amount", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var payrolls []models.Payroll
	if err := query.Find(&payrolls).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payroll records: %w", err)
	}

	return payrolls, total, nil
}
