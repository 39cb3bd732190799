// internal/services/report_service.go
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/models"
)

// ReportService exports delivered sales for back-office analysis.
type ReportService struct {
	db        *gorm.DB
	exportDir string
}

// SaleExportRow is one flattened line item of a delivered order.
type SaleExportRow struct {
	OrderDate    string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderNumber  string  `parquet:"name=order_number, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerName string  `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	ProductCode  string  `parquet:"name=product_code, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity     int32   `parquet:"name=quantity, type=INT32"`
	UnitPrice    float64 `parquet:"name=unit_price, type=DOUBLE"`
	Subtotal     float64 `parquet:"name=subtotal, type=DOUBLE"`
	OrderTotal   float64 `parquet:"name=order_total, type=DOUBLE"`
}

// NewReportService wires the exporter. When exportDir is non-empty a
// copy of every export is kept there.
func NewReportService(db *gorm.DB, exportDir string) *ReportService {
	return &ReportService{db: db, exportDir: exportDir}
}

// ExportSalesParquet renders delivered sales since the given date as
// an in-memory Parquet file, one row per line item.
func (s *ReportService) ExportSalesParquet(since time.Time) ([]byte, int, error) {
	var orders []models.Order
	if err := s.db.Preload("Customer").
		Where("status = ? AND created_at >= ?", models.OrderStatusDelivered, since).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sales for export: %w", err)
	}

	fw := buffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(SaleExportRow), 2)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	rows := 0
	for _, order := range orders {
		customerName := WalkInCustomerName
		if order.Customer != nil {
			customerName = order.Customer.Name
		}

		for _, item := range order.Items {
			row := SaleExportRow{
				OrderDate:    order.CreatedAt.Format("2006-01-02"),
				OrderNumber:  order.OrderNumber,
				CustomerName: customerName,
				ProductCode:  item.ProductCode,
				Quantity:     int32(item.Quantity),
				UnitPrice:    item.Price,
				Subtotal:     float64(item.Quantity) * item.Price,
				OrderTotal:   order.TotalAmount,
			}
			if err := pw.Write(row); err != nil {
				return nil, 0, fmt.Errorf("failed to write parquet row: %w", err)
			}
			rows++
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, 0, fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to close parquet buffer: %w", err)
	}

	data := fw.Bytes()
	s.archiveExport(data)
	return data, rows, nil
}

// archiveExport keeps a dated copy on disk. Best effort; the download
// itself never fails because of a full or missing archive volume.
func (s *ReportService) archiveExport(data []byte) {
	if s.exportDir == "" {
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		logrus.WithError(err).Warn("Failed to create report export directory")
		return
	}

	name := fmt.Sprintf("sales_%s.parquet", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(s.exportDir, name), data, 0o644); err != nil {
		logrus.WithError(err).Warn("Failed to archive sales export")
	}
}
