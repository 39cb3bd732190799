// internal/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

type OrderHandler struct {
	orderService    *services.OrderService
	customerService *services.CustomerService
}

func NewOrderHandler(orderService *services.OrderService, customerService *services.CustomerService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		customerService: customerService,
	}
}

// POST /orders
func (h *OrderHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.CreateSale(&req)
	if err != nil {
		var stockErr *services.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			utils.ErrorResponse(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", stockErr.Error(), gin.H{
				"product_code": stockErr.ProductCode,
				"requested":    stockErr.Requested,
				"available":    stockErr.Available,
				"shortfall":    stockErr.Shortfall(),
			})
		case errors.Is(err, services.ErrProductNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error(), nil)
		case errors.Is(err, services.ErrStockConflict):
			utils.ConflictResponse(c, "Sale could not be committed due to concurrent stock updates")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	// Membership spend tracking rides along after the sale commits;
	// a failure here must not undo the sale.
	if req.CustomerID != nil {
		if err := h.customerService.AddSpent(*req.CustomerID, order.TotalAmount); err != nil {
			logrus.WithError(err).WithField("customer_id", req.CustomerID).
				Warn("Failed to update customer total spent")
		}
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}

// GET /orders/sales
func (h *OrderHandler) ListSales(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	sales, total, err := h.orderService.ListSales(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(sales, total, params))
}

// GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	status := models.OrderStatus(c.DefaultQuery("status", string(models.OrderStatusDelivered)))

	orders, total, err := h.orderService.ListOrdersByStatus(status, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(orders, total, params))
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
