package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payroll/internal/model"
)

// SalarySlipRepository defines persistence operations for salary slips.
type SalarySlipRepository interface {
	Create(ctx context.Context, slip *model.SalarySlip) error
	Update(ctx context.Context, slip *model.SalarySlip) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SalarySlip, error)
	ListAll(ctx context.Context) ([]model.SalarySlip, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.SalarySlip, error)
}

type salarySlipRepository struct {
	db *gorm.DB
}

// NewSalarySlipRepository builds a GORM-backed repository.
func NewSalarySlipRepository(db *gorm.DB) SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

func (r *salarySlipRepository) Create(ctx context.Context, slip *model.SalarySlip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *salarySlipRepository) Update(ctx context.Context, slip *model.SalarySlip) error {
	return r.db.WithContext(ctx).Save(slip).Error
}

func (r *salarySlipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SalarySlip, error) {
	var slip model.SalarySlip
	if err := r.db.WithContext(ctx).First(&slip, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *salarySlipRepository) ListAll(ctx context.Context) ([]model.SalarySlip, error) {
	var slips []model.SalarySlip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&slips).Error; err != nil {
		return nil, err
	}
	return slips, nil
}

func (r *salarySlipRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.SalarySlip, error) {
	var slips []model.SalarySlip
	if err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("created_at DESC").Find(&slips).Error; err != nil {
		return nil, err
	}
	return slips, nil
}
