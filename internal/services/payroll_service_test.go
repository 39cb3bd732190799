// internal/services/payroll_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *PayrollService
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewPayrollService(suite.db)
}

func (suite *PayrollServiceTestSuite) createEmployee(name string, salary float64) *models.Employee {
	employee, err := suite.service.CreateEmployee(&CreateEmployeeRequest{
		Name:     name,
		Role:     "cashier",
		Salary:   salary,
		JoinedAt: time.Now().AddDate(-1, 0, 0),
	})
	suite.Require().NoError(err)
	return employee
}

func (suite *PayrollServiceTestSuite) TestGeneratePayroll() {
	suite.createEmployee("Dana", 2500)
	suite.createEmployee("Eli", 3100)

	payrolls, err := suite.service.GeneratePayroll("2025-06")
	suite.Require().NoError(err)
	suite.Len(payrolls, 2)

	for _, payroll := range payrolls {
		suite.Equal("2025-06", payroll.Month)
		suite.Equal(models.PayrollStatusUnpaid, payroll.Status)
	}
}

func (suite *PayrollServiceTestSuite) TestGeneratePayrollSkipsExisting() {
	suite.createEmployee("Dana", 2500)

	first, err := suite.service.GeneratePayroll("2025-06")
	suite.Require().NoError(err)
	suite.Len(first, 1)

	// A repeat run for the same month creates nothing new
	second, err := suite.service.GeneratePayroll("2025-06")
	suite.Require().NoError(err)
	suite.Empty(second)

	var count int64
	suite.db.Model(&models.Payroll{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *PayrollServiceTestSuite) TestGeneratePayrollBadMonth() {
	_, err := suite.service.GeneratePayroll("June 2025")
	suite.Error(err)

	_, err = suite.service.GeneratePayroll("2025-13")
	suite.Error(err)
}

func (suite *PayrollServiceTestSuite) TestMarkPaidOnce() {
	suite.createEmployee("Dana", 2500)
	payrolls, err := suite.service.GeneratePayroll("2025-06")
	suite.Require().NoError(err)

	paid, err := suite.service.MarkPaid(payrolls[0].ID)
	suite.Require().NoError(err)
	suite.Equal(models.PayrollStatusPaid, paid.Status)
	suite.NotNil(paid.PaidAt)

	_, err = suite.service.MarkPaid(payrolls[0].ID)
	suite.Error(err)
}

func (suite *PayrollServiceTestSuite) TestListPayrollsByMonth() {
	suite.createEmployee("Dana", 2500)

	_, err := suite.service.GeneratePayroll("2025-05")
	suite.Require().NoError(err)
	_, err = suite.service.GeneratePayroll("2025-06")
	suite.Require().NoError(err)

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}
	payrolls, total, err := suite.service.ListPayrolls("2025-06", params)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(payrolls, 1)
	suite.Equal("2025-06", payrolls[0].Month)
}

func TestPayrollServiceSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
