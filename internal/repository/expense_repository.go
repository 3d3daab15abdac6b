package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payroll/internal/model"
)

// ExpenseRepository defines persistence operations for expense claims.
type ExpenseRepository interface {
	Create(ctx context.Context, claim *model.ExpenseClaim) error
	Update(ctx context.Context, claim *model.ExpenseClaim) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ExpenseClaim, error)
	ListAll(ctx context.Context) ([]model.ExpenseClaim, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseClaim, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository builds a GORM-backed repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, claim *model.ExpenseClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *expenseRepository) Update(ctx context.Context, claim *model.ExpenseClaim) error {
	return r.db.WithContext(ctx).Save(claim).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ExpenseClaim, error) {
	var claim model.ExpenseClaim
	if err := r.db.WithContext(ctx).First(&claim, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *expenseRepository) ListAll(ctx context.Context) ([]model.ExpenseClaim, error) {
	var claims []model.ExpenseClaim
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *expenseRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseClaim, error) {
	var claims []model.ExpenseClaim
	if err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("submitted_at DESC").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
