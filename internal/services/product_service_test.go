// internal/services/product_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
)

type ProductServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProductService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewProductService(suite.db)
}

func (suite *ProductServiceTestSuite) createDiscount(name string, pct float64, start, end time.Time, categories ...string) *models.Discount {
	discountService := NewDiscountService(suite.db)
	discount, err := discountService.CreateDiscount(&CreateDiscountRequest{
		Name:       name,
		Type:       models.DiscountTypeSeasonal,
		Percentage: pct,
		StartDate:  start,
		EndDate:    end,
		Categories: categories,
	})
	suite.Require().NoError(err)
	return discount
}

func (suite *ProductServiceTestSuite) TestCreateProduct() {
	product, err := suite.service.CreateProduct(&CreateProductRequest{
		ProductCode:   "SKU-100",
		Name:          "Basmati Rice 5kg",
		Price:         12.50,
		Category:      models.CategoryGrocery,
		StockQuantity: 40,
	})

	suite.Require().NoError(err)
	suite.Equal(models.ProductStatusActive, product.Status)
	suite.Equal(40, product.StockQuantity)
}

func (suite *ProductServiceTestSuite) TestCreateProductDuplicateCode() {
	createTestProduct(suite.T(), suite.db, "SKU-100", 10.00, 5)

	_, err := suite.service.CreateProduct(&CreateProductRequest{
		ProductCode:   "SKU-100",
		Name:          "Another product",
		Price:         5.00,
		Category:      models.CategoryGrocery,
		StockQuantity: 1,
	})

	suite.Error(err)
	suite.Contains(err.Error(), "already exists")
}

func (suite *ProductServiceTestSuite) TestCreateProductUnknownCategory() {
	_, err := suite.service.CreateProduct(&CreateProductRequest{
		ProductCode:   "SKU-100",
		Name:          "Mystery item",
		Price:         5.00,
		Category:      models.ProductCategory("furniture"),
		StockQuantity: 1,
	})

	suite.Error(err)
	suite.Contains(err.Error(), "unknown category")
}

func (suite *ProductServiceTestSuite) TestListActiveByCategoryExcludesInactive() {
	createTestProduct(suite.T(), suite.db, "SKU-1", 10.00, 5)
	inactive := createTestProduct(suite.T(), suite.db, "SKU-2", 10.00, 5)
	suite.Require().NoError(suite.db.Model(inactive).
		Update("status", models.ProductStatusInactive).Error)

	products, err := suite.service.ListActiveByCategory(models.CategoryGrocery)
	suite.Require().NoError(err)
	suite.Len(products, 1)
	suite.Equal("SKU-1", products[0].ProductCode)
}

func (suite *ProductServiceTestSuite) TestAttachDiscountAppliesWindow() {
	product := createTestProduct(suite.T(), suite.db, "SKU-1", 100.00, 5)
	discount := suite.createDiscount("Summer", 25,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7),
		string(models.CategoryGrocery))

	updated, err := suite.service.AttachDiscount(product.ID, discount.ID)
	suite.Require().NoError(err)

	suite.Require().NotNil(updated.DiscountID)
	suite.Equal(discount.ID, *updated.DiscountID)
	suite.Equal(25.0, updated.DiscountPercentage)
	suite.Equal(75.00, updated.DiscountedPrice(time.Now()))
}

func (suite *ProductServiceTestSuite) TestAttachDiscountWrongCategory() {
	product := createTestProduct(suite.T(), suite.db, "SKU-1", 100.00, 5)
	discount := suite.createDiscount("Gadget week", 25,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7),
		string(models.CategoryElectronics))

	_, err := suite.service.AttachDiscount(product.ID, discount.ID)
	suite.Error(err)
}

func (suite *ProductServiceTestSuite) TestRemoveDiscountClearsEverything() {
	product := createTestProduct(suite.T(), suite.db, "SKU-1", 100.00, 5)
	discount := suite.createDiscount("Summer", 25,
		time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 7),
		models.CategoryAll)

	_, err := suite.service.AttachDiscount(product.ID, discount.ID)
	suite.Require().NoError(err)

	cleared, err := suite.service.RemoveDiscount(product.ID)
	suite.Require().NoError(err)

	suite.Nil(cleared.DiscountID)
	suite.Zero(cleared.DiscountPercentage)
	suite.Nil(cleared.DiscountStartDate)
	suite.Nil(cleared.DiscountEndDate)
	suite.Equal(100.00, cleared.DiscountedPrice(time.Now()))
}

func (suite *ProductServiceTestSuite) TestSearchExcludesInactiveByDefault() {
	createTestProduct(suite.T(), suite.db, "SKU-1", 10.00, 5)
	inactive := createTestProduct(suite.T(), suite.db, "SKU-2", 10.00, 5)
	suite.Require().NoError(suite.db.Model(inactive).
		Update("status", models.ProductStatusInactive).Error)

	params := ProductSearchParams{}
	params.Page = 1
	params.Limit = 20
	params.Sort = "created_at"
	params.Order = "desc"

	products, total, err := suite.service.SearchProducts(params)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(products, 1)

	params.IncludeAll = true
	_, total, err = suite.service.SearchProducts(params)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
