package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email is already in use")
	// ErrInvalidCredentials is returned for unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmployeeNotFound is returned when an employee record is not found.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrExpenseNotFound is returned when an expense claim is not found.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrSalarySlipNotFound is returned when a salary slip is not found.
	ErrSalarySlipNotFound = errors.New("salary slip not found")
	// ErrInvalidStateTransition is returned when deciding a claim that is no longer pending.
	ErrInvalidStateTransition = errors.New("expense has already been decided")
	// ErrNothingToUpdate is returned when an update request carries no updatable field.
	ErrNothingToUpdate = errors.New("please provide department or salary to update")
	// ErrForbidden is returned when the authenticated role may not perform the action.
	ErrForbidden = errors.New("access denied")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmployeeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EMPLOYEE_NOT_FOUND")
	case errors.Is(err, ErrExpenseNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXPENSE_NOT_FOUND")
	case errors.Is(err, ErrSalarySlipNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SALARY_SLIP_NOT_FOUND")
	case errors.Is(err, ErrInvalidStateTransition):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_STATE_TRANSITION")
	case errors.Is(err, ErrNothingToUpdate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOTHING_TO_UPDATE")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
