package main

import (
	"log"
	"net/http"

	_ "payroll/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"payroll/internal/auth"
	"payroll/internal/cache"
	"payroll/internal/config"
	"payroll/internal/db"
	"payroll/internal/handler"
	"payroll/internal/mailer"
	"payroll/internal/model"
	"payroll/internal/notify"
	"payroll/internal/repository"
	"payroll/internal/router"
	"payroll/internal/service"
)

// @title Payroll Management API
// @version 1.0
// @description Payroll/HR API with role-gated employee, expense, and salary slip management.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())
	if !cfg.IsProduction() {
		e.Debug = true
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ExpenseClaim{},
		&model.SalarySlip{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	notifier := notify.New(mailer.NewSMTPMailer(cfg))

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	slipRepo := repository.NewSalarySlipRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService, notifier)
	employeeService := service.NewEmployeeService(userRepo, cacheClient, notifier)
	expenseService := service.NewExpenseService(expenseRepo, userRepo, notifier)
	slipService := service.NewSalarySlipService(slipRepo, userRepo, cacheClient, notifier)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	slipHandler := handler.NewSalarySlipHandler(slipService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		expenseHandler,
		slipHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
