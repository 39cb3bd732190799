// internal/models/payroll.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	BaseModel
	Name     string    `json:"name" gorm:"size:255;not null"`
	Role     string    `json:"role" gorm:"size:100"`
	Email    string    `json:"email" gorm:"size:255"`
	Phone    string    `json:"phone" gorm:"size:50"`
	Salary   float64   `json:"salary" gorm:"type:decimal(10,2);not null"`
	JoinedAt time.Time `json:"joined_at"`

	// Relationships
	Payrolls []Payroll `json:"payrolls,omitempty" gorm:"foreignKey:EmployeeID"`
}

// Payroll is one month's pay record for an employee. Month is encoded
// as YYYY-MM.
type Payroll struct {
	BaseModel
	EmployeeID uuid.UUID     `json:"employee_id" gorm:"type:uuid;not null;index"`
	Month      string        `json:"month" gorm:"size:7;not null;index"`
	Amount     float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status     PayrollStatus `json:"status" gorm:"type:varchar(20);default:'unpaid';index"`
	PaidAt     *time.Time    `json:"paid_at"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
