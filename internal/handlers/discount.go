// internal/handlers/discount.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

type DiscountHandler struct {
	discountService *services.DiscountService
}

func NewDiscountHandler(discountService *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
	}
}

// POST /discounts
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req services.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	discount, err := h.discountService.CreateDiscount(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"discount": discount,
	})
}

// GET /discounts
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	discounts, total, err := h.discountService.ListDiscounts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(discounts, total, params))
}

// GET /discounts/:id
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid discount ID", nil)
		return
	}

	discount, err := h.discountService.GetDiscount(id)
	if err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			utils.NotFoundResponse(c, "Discount")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"discount": discount,
		"active":   discount.ActiveAt(time.Now()),
	})
}

// DELETE /discounts/:id
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid discount ID", nil)
		return
	}

	if err := h.discountService.DeleteDiscount(id); err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			utils.NotFoundResponse(c, "Discount")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Discount deleted",
	})
}
