package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"payroll/internal/auth"
	"payroll/internal/errors"
	"payroll/internal/model"
	"payroll/internal/service"
)

// SalarySlipHandler handles salary slip endpoints.
type SalarySlipHandler struct {
	slipService service.SalarySlipService
}

// NewSalarySlipHandler creates a new salary slip handler.
func NewSalarySlipHandler(slipService service.SalarySlipService) *SalarySlipHandler {
	return &SalarySlipHandler{slipService: slipService}
}

// CreateSlipRequest represents a salary slip creation request. Net salary
// is always computed server-side, never taken from the client.
type CreateSlipRequest struct {
	EmployeeID  string  `json:"employeeId" validate:"required,uuid"`
	Month       string  `json:"month" validate:"required"`
	Year        int     `json:"year" validate:"required,gte=2000"`
	BasicSalary float64 `json:"basicSalary" validate:"required,gte=0"`
	Allowances  float64 `json:"allowances" validate:"gte=0"`
	Deductions  float64 `json:"deductions" validate:"gte=0"`
}

// UpdateSlipRequest represents a salary slip update. Nil fields are left
// untouched.
type UpdateSlipRequest struct {
	BasicSalary *float64 `json:"basicSalary" validate:"omitempty,gte=0"`
	Allowances  *float64 `json:"allowances" validate:"omitempty,gte=0"`
	Deductions  *float64 `json:"deductions" validate:"omitempty,gte=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=issued paid cancelled"`
}

// Create godoc
// @Summary Issue a new salary slip
// @Tags salary-slips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSlipRequest true "Salary slip data"
// @Success 201 {object} service.SlipView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /salary-slip [post]
func (h *SalarySlipHandler) Create(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CreateSlipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_UUID",
		})
	}

	slip, err := h.slipService.Create(c.Request().Context(), identity.ID, service.SlipInput{
		EmployeeID:  employeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: decimal.NewFromFloat(req.BasicSalary),
		Allowances:  decimal.NewFromFloat(req.Allowances),
		Deductions:  decimal.NewFromFloat(req.Deductions),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, slip)
}

// Update godoc
// @Summary Update a salary slip
// @Tags salary-slips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary slip ID"
// @Param request body UpdateSlipRequest true "Fields to update"
// @Success 200 {object} service.SlipView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /salary-slip/{id} [put]
func (h *SalarySlipHandler) Update(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	slipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid salary slip ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateSlipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.SlipUpdate{}
	if req.BasicSalary != nil {
		v := decimal.NewFromFloat(*req.BasicSalary)
		update.BasicSalary = &v
	}
	if req.Allowances != nil {
		v := decimal.NewFromFloat(*req.Allowances)
		update.Allowances = &v
	}
	if req.Deductions != nil {
		v := decimal.NewFromFloat(*req.Deductions)
		update.Deductions = &v
	}
	if req.Status != nil {
		status := model.SlipStatus(*req.Status)
		update.Status = &status
	}

	slip, err := h.slipService.Update(c.Request().Context(), slipID, identity.ID, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, slip)
}

// ListAll godoc
// @Summary List all salary slips
// @Tags salary-slips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.SlipView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /salary-slip [get]
func (h *SalarySlipHandler) ListAll(c echo.Context) error {
	slips, err := h.slipService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, slips)
}

// ListForEmployee godoc
// @Summary List one employee's salary slips
// @Tags salary-slips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {array} service.SlipView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /salary-slip/employee/{id} [get]
func (h *SalarySlipHandler) ListForEmployee(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_UUID",
		})
	}

	if !auth.AllowForEmployee(identity, employeeID) {
		httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	slips, err := h.slipService.ListForEmployee(c.Request().Context(), employeeID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, slips)
}

// MySlips godoc
// @Summary List the caller's own salary slips
// @Tags salary-slips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.SlipView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /salary-slip/my-slips [get]
func (h *SalarySlipHandler) MySlips(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	slips, err := h.slipService.ListForEmployee(c.Request().Context(), identity.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, slips)
}

// Download godoc
// @Summary Download a salary slip as PDF
// @Tags salary-slips
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Salary slip ID"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /salary-slip/{id}/download [get]
func (h *SalarySlipHandler) Download(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	slipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid salary slip ID",
			Code:  "INVALID_UUID",
		})
	}

	owner, err := h.slipService.SlipOwner(c.Request().Context(), slipID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !auth.AllowForEmployee(identity, owner) {
		httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	document, err := h.slipService.RenderPDF(c.Request().Context(), slipID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=salary-slip-%s.pdf", slipID))
	return c.Blob(http.StatusOK, "application/pdf", document)
}
