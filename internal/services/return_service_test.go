// internal/services/return_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
)

type ReturnServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ReturnService
}

func (suite *ReturnServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewReturnService(suite.db)
}

func (suite *ReturnServiceTestSuite) createDeliveredOrder(amount float64) *models.Order {
	order := &models.Order{
		OrderNumber: "POS-RETURNS01",
		Status:      models.OrderStatusDelivered,
		TotalAmount: amount,
		Items: models.LineItems{
			{ProductCode: "P1", Quantity: 1, Price: amount},
		},
	}
	suite.Require().NoError(suite.db.Create(order).Error)
	return order
}

func (suite *ReturnServiceTestSuite) TestCreateReturn() {
	order := suite.createDeliveredOrder(50.00)

	ret, err := suite.service.CreateReturn(&CreateReturnRequest{
		OrderID: order.ID,
		Amount:  20.00,
		Reason:  "damaged packaging",
	})

	suite.Require().NoError(err)
	suite.Equal(models.ReturnStatusPending, ret.Status)
	suite.Equal(order.ID, ret.OrderID)
	suite.Equal(20.00, ret.Amount)
}

func (suite *ReturnServiceTestSuite) TestCreateReturnRejectsNonDelivered() {
	order := &models.Order{
		OrderNumber: "POS-RETURNS02",
		Status:      models.OrderStatusPending,
		TotalAmount: 50.00,
		Items: models.LineItems{
			{ProductCode: "P1", Quantity: 1, Price: 50.00},
		},
	}
	suite.Require().NoError(suite.db.Create(order).Error)

	_, err := suite.service.CreateReturn(&CreateReturnRequest{
		OrderID: order.ID,
		Amount:  20.00,
		Reason:  "changed my mind",
	})

	suite.Error(err)
}

func (suite *ReturnServiceTestSuite) TestCreateReturnCapsAmount() {
	order := suite.createDeliveredOrder(50.00)

	_, err := suite.service.CreateReturn(&CreateReturnRequest{
		OrderID: order.ID,
		Amount:  60.00,
		Reason:  "damaged packaging",
	})

	suite.Error(err)
	suite.Contains(err.Error(), "exceeds order total")
}

func (suite *ReturnServiceTestSuite) TestCreateReturnDoesNotRestock() {
	createTestProduct(suite.T(), suite.db, "P1", 50.00, 10)
	orderService := NewOrderService(suite.db, 3)

	order, err := orderService.CreateSale(&CreateSaleRequest{
		TotalAmount: 50.00,
		Items: []SaleLineItem{
			{ProductCode: "P1", Quantity: 1},
		},
	})
	suite.Require().NoError(err)

	_, err = suite.service.CreateReturn(&CreateReturnRequest{
		OrderID: order.ID,
		Amount:  50.00,
		Reason:  "damaged packaging",
	})
	suite.Require().NoError(err)

	var product models.Product
	suite.Require().NoError(suite.db.Where("product_code = ?", "P1").First(&product).Error)
	suite.Equal(9, product.StockQuantity)
}

func (suite *ReturnServiceTestSuite) TestResolveReturn() {
	order := suite.createDeliveredOrder(50.00)
	ret, err := suite.service.CreateReturn(&CreateReturnRequest{
		OrderID: order.ID,
		Amount:  20.00,
		Reason:  "damaged packaging",
	})
	suite.Require().NoError(err)

	resolved, err := suite.service.ResolveReturn(ret.ID, models.ReturnStatusApproved)
	suite.Require().NoError(err)
	suite.Equal(models.ReturnStatusApproved, resolved.Status)

	// A resolved return cannot flip again
	_, err = suite.service.ResolveReturn(ret.ID, models.ReturnStatusRejected)
	suite.Error(err)
}

func (suite *ReturnServiceTestSuite) TestResolveReturnRejectsPendingStatus() {
	order := suite.createDeliveredOrder(50.00)
	ret, err := suite.service.CreateReturn(&CreateReturnRequest{
		OrderID: order.ID,
		Amount:  20.00,
		Reason:  "damaged packaging",
	})
	suite.Require().NoError(err)

	_, err = suite.service.ResolveReturn(ret.ID, models.ReturnStatusPending)
	suite.Error(err)
}

func TestReturnServiceSuite(t *testing.T) {
	suite.Run(t, new(ReturnServiceTestSuite))
}
