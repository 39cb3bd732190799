// internal/services/dashboard_service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *DashboardService
	now     time.Time
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewDashboardService(suite.db)
	suite.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

// createOrderAt backdates an order, bypassing the model hooks that
// would stamp the current time.
func (suite *DashboardServiceTestSuite) createOrderAt(amount float64, status models.OrderStatus, at time.Time) {
	order := &models.Order{
		OrderNumber: fmt.Sprintf("POS-%d", time.Now().UnixNano()),
		Status:      status,
		TotalAmount: amount,
		Items: models.LineItems{
			{ProductCode: "P1", Quantity: 1, Price: amount},
		},
	}
	suite.Require().NoError(suite.db.Create(order).Error)
	suite.Require().NoError(suite.db.Model(order).UpdateColumn("created_at", at).Error)
}

func (suite *DashboardServiceTestSuite) createCustomerAt(name string, at time.Time) {
	customer := createTestCustomer(suite.T(), suite.db, name)
	suite.Require().NoError(suite.db.Model(customer).UpdateColumn("created_at", at).Error)
}

func (suite *DashboardServiceTestSuite) TestStatsOnEmptyDatabase() {
	stats, err := suite.service.GetDashboardStats(suite.now)
	suite.Require().NoError(err)

	suite.Zero(stats.TotalRevenue)
	suite.Zero(stats.SalesToday)
	suite.Zero(stats.SalesTodayChange)
	suite.Zero(stats.RevenueChange)
	suite.Zero(stats.TotalCustomers)
	suite.Zero(stats.CustomerChange)
	suite.Zero(stats.PendingOrders)
	suite.Zero(stats.TotalReturns)
	suite.Equal("$0.00", stats.TotalRevenueDisplay)
	suite.Equal("$0.00", stats.SalesTodayDisplay)
}

func (suite *DashboardServiceTestSuite) TestStatsSumsDeliveredOnly() {
	today := suite.now.Add(-2 * time.Hour)
	yesterday := suite.now.AddDate(0, 0, -1)
	lastYear := suite.now.AddDate(-1, 0, 0)

	suite.createOrderAt(100.00, models.OrderStatusDelivered, today)
	suite.createOrderAt(50.00, models.OrderStatusDelivered, yesterday)
	suite.createOrderAt(200.00, models.OrderStatusDelivered, lastYear)
	suite.createOrderAt(999.00, models.OrderStatusPending, today)
	suite.createOrderAt(999.00, models.OrderStatusCancelled, today)

	stats, err := suite.service.GetDashboardStats(suite.now)
	suite.Require().NoError(err)

	suite.Equal(350.00, stats.TotalRevenue)
	suite.Equal(100.00, stats.SalesToday)
	// 100 today against 50 yesterday
	suite.InDelta(100.0, stats.SalesTodayChange, 0.001)
	suite.Equal(int64(1), stats.PendingOrders)
	suite.Equal("$350.00", stats.TotalRevenueDisplay)
}

func (suite *DashboardServiceTestSuite) TestStatsZeroBaselineReportsZero() {
	// Sales today but none yesterday: a zero baseline must not blow
	// the percentage up.
	suite.createOrderAt(100.00, models.OrderStatusDelivered, suite.now.Add(-time.Hour))

	stats, err := suite.service.GetDashboardStats(suite.now)
	suite.Require().NoError(err)

	suite.Equal(100.00, stats.SalesToday)
	suite.Zero(stats.SalesTodayChange)
}

func (suite *DashboardServiceTestSuite) TestStatsCustomerTiers() {
	suite.createCustomerAt("a", suite.now.AddDate(0, -3, 0))
	suite.createCustomerAt("b", suite.now.AddDate(0, 0, -2))

	gold := createTestCustomer(suite.T(), suite.db, "c")
	suite.Require().NoError(suite.db.Model(gold).
		Update("membership", models.MembershipGold).Error)

	stats, err := suite.service.GetDashboardStats(suite.now)
	suite.Require().NoError(err)

	suite.Equal(int64(3), stats.TotalCustomers)
	suite.Equal(int64(3), stats.CustomerStats.Total)
	suite.Equal(int64(2), stats.CustomerStats.Silver)
	suite.Equal(int64(1), stats.CustomerStats.Gold)
	suite.Equal(int64(0), stats.CustomerStats.Platinum)
}

func (suite *DashboardServiceTestSuite) TestChartSeriesIsGapFree() {
	// Activity in only two of the six months
	twoMonthsAgo := suite.now.AddDate(0, -2, 0)
	fiveMonthsAgo := suite.now.AddDate(0, -5, 0)

	suite.createOrderAt(120.00, models.OrderStatusDelivered, twoMonthsAgo)
	suite.createOrderAt(30.00, models.OrderStatusDelivered, twoMonthsAgo)
	suite.createOrderAt(75.00, models.OrderStatusDelivered, fiveMonthsAgo)
	suite.createOrderAt(999.00, models.OrderStatusPending, twoMonthsAgo)

	suite.createCustomerAt("a", twoMonthsAgo)
	suite.createCustomerAt("b", suite.now)

	series, err := suite.service.GetChartSeries(suite.now)
	suite.Require().NoError(err)

	suite.Equal([]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, series.Labels)
	suite.Equal([]float64{75.00, 0, 0, 150.00, 0, 0}, series.Revenue)
	suite.Equal([]int64{0, 0, 0, 1, 0, 1}, series.Customers)
}

func (suite *DashboardServiceTestSuite) TestChartSeriesEmptyDatabase() {
	series, err := suite.service.GetChartSeries(suite.now)
	suite.Require().NoError(err)

	suite.Len(series.Labels, 6)
	suite.Equal([]float64{0, 0, 0, 0, 0, 0}, series.Revenue)
	suite.Equal([]int64{0, 0, 0, 0, 0, 0}, series.Customers)
}

func (suite *DashboardServiceTestSuite) TestChartSeriesIgnoresOlderMonths() {
	// December falls outside the six-month window ending in June.
	december := suite.now.AddDate(0, -6, 0)
	suite.createOrderAt(500.00, models.OrderStatusDelivered, december)

	series, err := suite.service.GetChartSeries(suite.now)
	suite.Require().NoError(err)

	suite.Equal([]float64{0, 0, 0, 0, 0, 0}, series.Revenue)
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
