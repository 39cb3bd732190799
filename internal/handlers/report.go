// internal/handlers/report.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GET /reports/sales.parquet
func (h *ReportHandler) ExportSales(c *gin.Context) {
	since := time.Now().AddDate(0, -1, 0)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequestResponse(c, "since must be YYYY-MM-DD", nil)
			return
		}
		since = parsed
	}

	data, rows, err := h.reportService.ExportSalesParquet(since)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	filename := fmt.Sprintf("sales_%s.parquet", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Row-Count", fmt.Sprintf("%d", rows))
	c.Data(http.StatusOK, "application/octet-stream", data)
}
