package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"payroll/internal/auth"
	"payroll/internal/config"
	apperrors "payroll/internal/errors"
	"payroll/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	expenseHandler *handler.ExpenseHandler,
	slipHandler *handler.SalarySlipHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a valid session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/auth/me", authHandler.Me)

	// Employee directory (admin)
	secured.GET("/auth/employees", employeeHandler.List, RequireAction(auth.ActionViewAllEmployees))
	secured.PUT("/auth/employees/:id", employeeHandler.Update, RequireAction(auth.ActionEditEmployee))

	// Expense workflow
	secured.POST("/expense", expenseHandler.Submit)
	secured.GET("/expense", expenseHandler.ListAll, RequireAction(auth.ActionViewAllExpenses))
	secured.GET("/expense/employee/:id", expenseHandler.ListForEmployee)
	secured.PUT("/expense/:id/approve", expenseHandler.Approve, RequireAction(auth.ActionDecideExpense))
	secured.PUT("/expense/:id/reject", expenseHandler.Reject, RequireAction(auth.ActionDecideExpense))

	// Salary slips
	secured.POST("/salary-slip", slipHandler.Create, RequireAction(auth.ActionCreateSalarySlip))
	secured.PUT("/salary-slip/:id", slipHandler.Update, RequireAction(auth.ActionEditSalarySlip))
	secured.GET("/salary-slip", slipHandler.ListAll, RequireAction(auth.ActionViewAllSalarySlips))
	secured.GET("/salary-slip/employee/:id", slipHandler.ListForEmployee)
	secured.GET("/salary-slip/my-slips", slipHandler.MySlips)
	secured.GET("/salary-slip/:id/download", slipHandler.Download)
}

// RequireAction gates a route on the authorization predicate. Missing
// identity yields 401, role mismatch 403.
func RequireAction(action auth.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := auth.IdentityFromContext(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !auth.Allow(identity, action) {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
