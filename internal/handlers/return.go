// internal/handlers/return.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

type ReturnHandler struct {
	returnService *services.ReturnService
}

func NewReturnHandler(returnService *services.ReturnService) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
	}
}

// POST /returns
func (h *ReturnHandler) CreateReturn(c *gin.Context) {
	var req services.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ret, err := h.returnService.CreateReturn(&req)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"return": ret,
	})
}

// GET /returns
func (h *ReturnHandler) ListReturns(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	returns, total, err := h.returnService.ListReturns(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(returns, total, params))
}

// GET /returns/:id
func (h *ReturnHandler) GetReturn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid return ID", nil)
		return
	}

	ret, err := h.returnService.GetReturn(id)
	if err != nil {
		if errors.Is(err, services.ErrReturnNotFound) {
			utils.NotFoundResponse(c, "Return")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"return": ret,
	})
}

// PUT /returns/:id/resolve
func (h *ReturnHandler) ResolveReturn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid return ID", nil)
		return
	}

	var req struct {
		Status models.ReturnStatus `json:"status" validate:"required,oneof=approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ret, err := h.returnService.ResolveReturn(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrReturnNotFound) {
			utils.NotFoundResponse(c, "Return")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"return": ret,
	})
}
