// internal/handlers/dashboard.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(time.Now())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// GET /dashboard/chart
func (h *DashboardHandler) GetChartSeries(c *gin.Context) {
	series, err := h.dashboardService.GetChartSeries(time.Now())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"chart": series,
	})
}
