package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"payroll/internal/errors"
	"payroll/internal/service"
)

// EmployeeHandler handles employee directory endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// UpdateEmployeeRequest represents an admin's employee update. At least one
// field must be present.
type UpdateEmployeeRequest struct {
	Department *string  `json:"department" validate:"omitempty,min=1"`
	Salary     *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// List godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.EmployeeSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, employees)
}

// Update godoc
// @Summary Update an employee's department and/or salary
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} map[string]service.EmployeeSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.EmployeeUpdate{Department: req.Department}
	if req.Salary != nil {
		salary := decimal.NewFromFloat(*req.Salary)
		update.Salary = &salary
	}

	employee, err := h.employeeService.Update(c.Request().Context(), employeeID, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]service.EmployeeSummary{
		"employee": *employee,
	})
}
