// internal/services/customer_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewCustomerService(suite.db)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomerDefaults() {
	customer, err := suite.service.CreateCustomer(&CreateCustomerRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	suite.Require().NoError(err)
	suite.Equal(models.MembershipSilver, customer.Membership)
	suite.Equal("0.00", customer.TotalSpent)
	suite.Zero(customer.SpentAmount())
}

func (suite *CustomerServiceTestSuite) TestAddSpentAccumulates() {
	customer := createTestCustomer(suite.T(), suite.db, "alice")

	suite.Require().NoError(suite.service.AddSpent(customer.ID, 25.50))
	suite.Require().NoError(suite.service.AddSpent(customer.ID, 4.50))

	reloaded, err := suite.service.GetCustomer(customer.ID)
	suite.Require().NoError(err)
	suite.Equal("30.00", reloaded.TotalSpent)
	suite.Equal(30.00, reloaded.SpentAmount())
}

func (suite *CustomerServiceTestSuite) TestAddSpentRejectsNonPositive() {
	customer := createTestCustomer(suite.T(), suite.db, "alice")

	suite.Error(suite.service.AddSpent(customer.ID, 0))
	suite.Error(suite.service.AddSpent(customer.ID, -5))
}

func (suite *CustomerServiceTestSuite) TestListCustomersSearch() {
	createTestCustomer(suite.T(), suite.db, "alice")
	createTestCustomer(suite.T(), suite.db, "bob")

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc", Search: "ali"}
	customers, total, err := suite.service.ListCustomers(params)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(customers, 1)
	suite.Equal("alice", customers[0].Name)
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
