package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"payroll/internal/auth"
	"payroll/internal/errors"
	"payroll/internal/model"
	"payroll/internal/service"
)

// ExpenseHandler handles expense claim endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// SubmitExpenseRequest represents an expense claim submission.
type SubmitExpenseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
}

// Submit godoc
// @Summary Submit a new expense claim
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitExpenseRequest true "Expense data"
// @Success 201 {object} model.ExpenseClaim
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense [post]
func (h *ExpenseHandler) Submit(c echo.Context) error {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req SubmitExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "date must be in YYYY-MM-DD format",
			Code:  "INVALID_DATE",
		})
	}

	claim, err := h.expenseService.Submit(c.Request().Context(), identity.ID, service.ExpenseInput{
		Title:       req.Title,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, claim)
}

// ListAll godoc
// @Summary List all expense claims
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ExpenseClaim
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense [get]
func (h *ExpenseHandler) ListAll(c echo.Context) error {
	claims, err := h.expenseService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, claims)
}

// ListForEmployee godoc
// @Summary List one employee's expense claims
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {array} model.ExpenseClaim
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense/employee/{id} [get]
func (h *ExpenseHandler) ListForEmployee(c echo.Context) error {
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

	claims, err := h.expenseService.ListForEmployee(c.Request().Context(), employeeID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, claims)
}

// Approve godoc
// @Summary Approve a pending expense claim
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} model.ExpenseClaim
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense/{id}/approve [put]
func (h *ExpenseHandler) Approve(c echo.Context) error {
	return h.decide(c, model.ExpenseStatusApproved)
}

// Reject godoc
// @Summary Reject a pending expense claim
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} model.ExpenseClaim
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense/{id}/reject [put]
func (h *ExpenseHandler) Reject(c echo.Context) error {
	return h.decide(c, model.ExpenseStatusRejected)
}

func (h *ExpenseHandler) decide(c echo.Context, outcome model.ExpenseStatus) error {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid expense ID",
			Code:  "INVALID_UUID",
		})
	}

	claim, err := h.expenseService.Decide(c.Request().Context(), claimID, outcome)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, claim)
}
