package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"payroll/internal/config"
	"payroll/internal/db"
	"payroll/internal/model"
	"payroll/internal/repository"
)

type seedUser struct {
	Email      string
	Password   string
	FullName   string
	Role       model.Role
	Department string
	Salary     string
}

// Demo accounts for local development. Seeding is idempotent by email.
var seedUsers = []seedUser{
	{Email: "admin@payroll.local", Password: "admin123", FullName: "System Admin", Role: model.RoleAdmin},
	{Email: "alice@payroll.local", Password: "password123", FullName: "Alice Johnson", Role: model.RoleEmployee, Department: "Engineering", Salary: "5000"},
	{Email: "bob@payroll.local", Password: "password123", FullName: "Bob Martinez", Role: model.RoleEmployee, Department: "Finance", Salary: "4200"},
	{Email: "carol@payroll.local", Password: "password123", FullName: "Carol Nguyen", Role: model.RoleEmployee},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.ExpenseClaim{}, &model.SalarySlip{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, seed := range seedUsers {
		existing, err := users.FindByEmail(ctx, seed.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check for %s: %v", seed.Email, err)
		}
		if existing != nil {
			log.Printf("Skipping %s (already exists)", seed.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", seed.Email, err)
		}

		salary := decimal.Zero
		if seed.Salary != "" {
			salary, err = decimal.NewFromString(seed.Salary)
			if err != nil {
				log.Fatalf("Invalid seed salary for %s: %v", seed.Email, err)
			}
		}

		user := &model.User{
			Email:        seed.Email,
			PasswordHash: string(hash),
			FullName:     seed.FullName,
			Role:         seed.Role,
			Department:   seed.Department,
			Salary:       salary,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", seed.Email, err)
		}
		log.Printf("Created %s (%s)", seed.Email, seed.Role)
		created++
	}

	log.Printf("Seed complete: %d users created, %d skipped", created, len(seedUsers)-created)
}
