// internal/services/dashboard_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

// DashboardService derives point-in-time and time-bucketed summary
// statistics from committed orders, customers and returns. Read-only;
// it tolerates slightly stale snapshots and takes no locks.
type DashboardService struct {
	db *gorm.DB
}

type CustomerStats struct {
	Total    int64 `json:"total"`
	Silver   int64 `json:"silver"`
	Gold     int64 `json:"gold"`
	Platinum int64 `json:"platinum"`
}

type DashboardStats struct {
	TotalRevenue        float64       `json:"total_revenue"`
	TotalRevenueDisplay string        `json:"total_revenue_display"`
	SalesToday          float64       `json:"sales_today"`
	SalesTodayDisplay   string        `json:"sales_today_display"`
	SalesTodayChange    float64       `json:"sales_today_change"`
	RevenueChange       float64       `json:"revenue_change"`
	TotalCustomers      int64         `json:"total_customers"`
	CustomerChange      float64       `json:"customer_change"`
	PendingOrders       int64         `json:"pending_orders"`
	OrderChange         float64       `json:"order_change"`
	TotalReturns        float64       `json:"total_returns"`
	TotalReturnsDisplay string        `json:"total_returns_display"`
	ReturnChange        float64       `json:"return_change"`
	CustomerStats       CustomerStats `json:"customer_stats"`
}

type ChartSeries struct {
	Labels    []string  `json:"labels"`
	Revenue   []float64 `json:"revenue"`
	Customers []int64   `json:"customers"`
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetDashboardStats computes the dashboard summary as of now. Any read
// failure aborts the whole call; partial results are never returned.
func (s *DashboardService) GetDashboardStats(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	monthAgo := now.AddDate(0, -1, 0)

	// Revenue
	totalRevenue, err := s.sumDeliveredOrders(nil, nil)
	if err != nil {
		return nil, err
	}
	salesToday, err := s.sumDeliveredOrders(&todayStart, nil)
	if err != nil {
		return nil, err
	}
	yesterdaySales, err := s.sumDeliveredOrders(&yesterdayStart, &todayStart)
	if err != nil {
		return nil, err
	}
	monthRevenue, err := s.sumDeliveredOrders(&monthAgo, nil)
	if err != nil {
		return nil, err
	}

	stats.TotalRevenue = totalRevenue
	stats.SalesToday = salesToday
	stats.SalesTodayChange = percentChange(salesToday, yesterdaySales)
	stats.RevenueChange = percentChange(totalRevenue, monthRevenue)

	// Customers
	if err := s.db.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	tierCounts := map[models.MembershipTier]*int64{
		models.MembershipSilver:   &stats.CustomerStats.Silver,
		models.MembershipGold:     &stats.CustomerStats.Gold,
		models.MembershipPlatinum: &stats.CustomerStats.Platinum,
	}
	for tier, dest := range tierCounts {
		if err := s.db.Model(&models.Customer{}).
			Where("membership = ?", tier).Count(dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s customers: %w", tier, err)
		}
	}
	stats.CustomerStats.Total = stats.TotalCustomers

	var customersLastMonth int64
	if err := s.db.Model(&models.Customer{}).
		Where("created_at >= ?", monthAgo).Count(&customersLastMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent customers: %w", err)
	}
	stats.CustomerChange = percentChange(float64(stats.TotalCustomers), float64(customersLastMonth))

	// Pending orders
	pendingStatuses := []models.OrderStatus{models.OrderStatusPending, models.OrderStatusOutForDelivery}
	if err := s.db.Model(&models.Order{}).
		Where("status IN ?", pendingStatuses).Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	var pendingLastMonth int64
	if err := s.db.Model(&models.Order{}).
		Where("status IN ? AND created_at >= ?", pendingStatuses, monthAgo).
		Count(&pendingLastMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent pending orders: %w", err)
	}
	stats.OrderChange = percentChange(float64(stats.PendingOrders), float64(pendingLastMonth))

	// Returns
	totalReturns, err := s.sumReturns(nil)
	if err != nil {
		return nil, err
	}
	monthReturns, err := s.sumReturns(&monthAgo)
	if err != nil {
		return nil, err
	}
	stats.TotalReturns = totalReturns
	stats.ReturnChange = percentChange(totalReturns, monthReturns)

	stats.TotalRevenueDisplay = utils.FormatCurrency(stats.TotalRevenue)
	stats.SalesTodayDisplay = utils.FormatCurrency(stats.SalesToday)
	stats.TotalReturnsDisplay = utils.FormatCurrency(stats.TotalReturns)

	return stats, nil
}

// GetChartSeries produces two parallel six-point series, oldest to
// newest, covering the trailing six whole calendar months including
// the current one. The buckets are built before the grouped query
// results are merged in, so months without activity are explicitly 0
// and the series always has a fixed, gap-free length.
func (s *DashboardService) GetChartSeries(now time.Time) (*ChartSeries, error) {
	const points = 6

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	windowStart := monthStart.AddDate(0, -(points - 1), 0)

	series := &ChartSeries{
		Labels:    make([]string, points),
		Revenue:   make([]float64, points),
		Customers: make([]int64, points),
	}

	keys := make([]string, points)
	for i := 0; i < points; i++ {
		bucket := monthStart.AddDate(0, -(points - 1 - i), 0)
		keys[i] = bucket.Format("2006-01")
		series.Labels[i] = bucket.Format("Jan")
	}

	monthlyRevenue, err := s.monthlyRevenue(windowStart)
	if err != nil {
		return nil, err
	}
	monthlyCustomers, err := s.monthlyNewCustomers(windowStart)
	if err != nil {
		return nil, err
	}

	for i, key := range keys {
		series.Revenue[i] = monthlyRevenue[key]
		series.Customers[i] = monthlyCustomers[key]
	}

	return series, nil
}

func (s *DashboardService) sumDeliveredOrders(from, to *time.Time) (float64, error) {
	query := s.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusDelivered)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	var total float64
	if err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum delivered orders: %w", err)
	}
	return total, nil
}

func (s *DashboardService) sumReturns(from *time.Time) (float64, error) {
	query := s.db.Model(&models.Return{})
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}

	var total float64
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum returns: %w", err)
	}
	return total, nil
}

type monthlyRow struct {
	Month string
	Total float64
	Count int64
}

func (s *DashboardService) monthlyRevenue(from time.Time) (map[string]float64, error) {
	expr := s.monthKeyExpr()

	var rows []monthlyRow
	if err := s.db.Model(&models.Order{}).
		Select(expr+" AS month, COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ? AND created_at >= ?", models.OrderStatusDelivered, from).
		Group(expr).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group monthly revenue: %w", err)
	}

	result := make(map[string]float64, len(rows))
	for _, row := range rows {
		result[row.Month] = row.Total
	}
	return result, nil
}

func (s *DashboardService) monthlyNewCustomers(from time.Time) (map[string]int64, error) {
	expr := s.monthKeyExpr()

	var rows []monthlyRow
	if err := s.db.Model(&models.Customer{}).
		Select(expr+" AS month, COUNT(*) AS count").
		Where("created_at >= ?", from).
		Group(expr).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group monthly customers: %w", err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Month] = row.Count
	}
	return result, nil
}

// monthKeyExpr yields a YYYY-MM grouping key for the connected
// dialect. Tests run against SQLite, production runs Postgres.
func (s *DashboardService) monthKeyExpr() string {
	if s.db.Dialector.Name() == "postgres" {
		return "to_char(created_at, 'YYYY-MM')"
	}
	return "strftime('%Y-%m', created_at)"
}

// percentChange reports the change of current against baseline. A zero
// baseline reports 0 rather than dividing by zero.
func percentChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}
