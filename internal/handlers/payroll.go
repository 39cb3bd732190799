// internal/handlers/payroll.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

type PayrollHandler struct {
	payrollService *services.PayrollService
}

func NewPayrollHandler(payrollService *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// POST /employees
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	var req services.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	employee, err := h.payrollService.CreateEmployee(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"employee": employee,
	})
}

// GET /employees
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	employees, total, err := h.payrollService.ListEmployees(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(employees, total, params))
}

// GET /employees/:id
func (h *PayrollHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid employee ID", nil)
		return
	}

	employee, err := h.payrollService.GetEmployee(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			utils.NotFoundResponse(c, "Employee")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"employee": employee,
	})
}

// PUT /employees/:id
func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid employee ID", nil)
		return
	}

	var req services.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	employee, err := h.payrollService.UpdateEmployee(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			utils.NotFoundResponse(c, "Employee")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"employee": employee,
	})
}

// DELETE /employees/:id
func (h *PayrollHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid employee ID", nil)
		return
	}

	if err := h.payrollService.DeleteEmployee(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			utils.NotFoundResponse(c, "Employee")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Employee deleted",
	})
}

// POST /payrolls/generate
func (h *PayrollHandler) GeneratePayroll(c *gin.Context) {
	var req struct {
		Month string `json:"month" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	payrolls, err := h.payrollService.GeneratePayroll(req.Month)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"payrolls": payrolls,
	})
}

// GET /payrolls
func (h *PayrollHandler) ListPayrolls(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	month := c.Query("month")

	payrolls, total, err := h.payrollService.ListPayrolls(month, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(payrolls, total, params))
}

// PUT /payrolls/:id/pay
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payroll ID", nil)
		return
	}

	payroll, err := h.payrollService.MarkPaid(id)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"payroll": payroll,
	})
}
