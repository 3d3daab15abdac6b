package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"payroll/internal/cache"
	"payroll/internal/errors"
	"payroll/internal/mailer"
	"payroll/internal/model"
	"payroll/internal/notify"
	"payroll/internal/pdf"
	"payroll/internal/repository"
)

const slipCacheTTL = 5 * time.Minute

// SlipView is a salary slip with the employee name resolved at read time,
// unlike ExpenseClaim which snapshots the name at submission.
type SlipView struct {
	ID           uuid.UUID        `json:"id"`
	EmployeeID   uuid.UUID        `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	Month        string           `json:"month"`
	Year         int              `json:"year"`
	BasicSalary  decimal.Decimal  `json:"basic_salary"`
	Allowances   decimal.Decimal  `json:"allowances"`
	Deductions   decimal.Decimal  `json:"deductions"`
	NetSalary    decimal.Decimal  `json:"net_salary"`
	Status       model.SlipStatus `json:"status"`
}

// SlipInput carries the fields an admin supplies when issuing a slip.
type SlipInput struct {
	EmployeeID  uuid.UUID
	Month       string
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
}

// SlipUpdate carries the admin-editable fields. Nil means "leave as is".
type SlipUpdate struct {
	BasicSalary *decimal.Decimal
	Allowances  *decimal.Decimal
	Deductions  *decimal.Decimal
	Status      *model.SlipStatus
}

// SalarySlipService handles salary slip lifecycle and PDF rendering.
type SalarySlipService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input SlipInput) (*SlipView, error)
	Update(ctx context.Context, slipID, updatedBy uuid.UUID, update SlipUpdate) (*SlipView, error)
	ListAll(ctx context.Context) ([]SlipView, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]SlipView, error)
	SlipOwner(ctx context.Context, slipID uuid.UUID) (uuid.UUID, error)
	RenderPDF(ctx context.Context, slipID uuid.UUID) ([]byte, error)
}

type salarySlipService struct {
	slips    repository.SalarySlipRepository
	users    repository.UserRepository
	cache    *cache.Client
	notifier *notify.Notifier
}

// NewSalarySlipService creates a new salary slip service.
func NewSalarySlipService(slips repository.SalarySlipRepository, users repository.UserRepository, cacheClient *cache.Client, notifier *notify.Notifier) SalarySlipService {
	return &salarySlipService{
		slips:    slips,
		users:    users,
		cache:    cacheClient,
		notifier: notifier,
	}
}

func slipCacheKey(employeeID uuid.UUID) string {
	return fmt.Sprintf("slips:employee:%s", employeeID)
}

func viewOf(slip *model.SalarySlip, employeeName string) SlipView {
	return SlipView{
		ID:           slip.ID,
		EmployeeID:   slip.EmployeeID,
		EmployeeName: employeeName,
		Month:        slip.Month,
		Year:         slip.Year,
		BasicSalary:  slip.BasicSalary,
		Allowances:   slip.Allowances,
		Deductions:   slip.Deductions,
		NetSalary:    slip.NetSalary,
		Status:       slip.Status,
	}
}

// resolveName returns the employee's current full name, or a placeholder
// when the user record no longer resolves.
func (s *salarySlipService) resolveName(ctx context.Context, employeeID uuid.UUID) string {
	if employee, err := s.users.FindByID(ctx, employeeID); err == nil {
		return employee.FullName
	}
	return "Unknown Employee"
}

// Create issues a new slip. Net salary is always recomputed server-side as
// basic + allowances - deductions.
func (s *salarySlipService) Create(ctx context.Context, createdBy uuid.UUID, input SlipInput) (*SlipView, error) {
	employee, err := s.users.FindByID(ctx, input.EmployeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	slip := &model.SalarySlip{
		EmployeeID:  input.EmployeeID,
		Month:       input.Month,
		Year:        input.Year,
		BasicSalary: input.BasicSalary,
		Allowances:  input.Allowances,
		Deductions:  input.Deductions,
		NetSalary:   input.BasicSalary.Add(input.Allowances).Sub(input.Deductions),
		Status:      model.SlipStatusIssued,
		CreatedBy:   createdBy,
	}

	if err := s.slips.Create(ctx, slip); err != nil {
		return nil, fmt.Errorf("create salary slip: %w", err)
	}

	_ = s.cache.Delete(ctx, slipCacheKey(slip.EmployeeID))

	subject, body := mailer.SalarySlipBody(employee.FullName, slip.Month, slip.Year, slip.NetSalary, false)
	s.notifier.Dispatch(employee.Email, subject, body)

	view := viewOf(slip, employee.FullName)
	return &view, nil
}

// Update edits a slip's money fields and/or status, recomputing the net.
// The owner is notified when any money field actually changed, even when
// the changes cancel out and the net stays the same.
func (s *salarySlipService) Update(ctx context.Context, slipID, updatedBy uuid.UUID, update SlipUpdate) (*SlipView, error) {
	slip, err := s.slips.FindByID(ctx, slipID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSalarySlipNotFound
		}
		return nil, fmt.Errorf("find salary slip: %w", err)
	}

	previousBasic := slip.BasicSalary
	previousAllowances := slip.Allowances
	previousDeductions := slip.Deductions
	previousNet := slip.NetSalary
	if update.BasicSalary != nil {
		slip.BasicSalary = *update.BasicSalary
	}
	if update.Allowances != nil {
		slip.Allowances = *update.Allowances
	}
	if update.Deductions != nil {
		slip.Deductions = *update.Deductions
	}
	if update.Status != nil {
		slip.Status = *update.Status
	}
	slip.NetSalary = slip.BasicSalary.Add(slip.Allowances).Sub(slip.Deductions)
	slip.UpdatedBy = &updatedBy

	if err := s.slips.Update(ctx, slip); err != nil {
		return nil, fmt.Errorf("update salary slip: %w", err)
	}

	_ = s.cache.Delete(ctx, slipCacheKey(slip.EmployeeID))

	moneyChanged := !slip.BasicSalary.Equal(previousBasic) ||
		!slip.Allowances.Equal(previousAllowances) ||
		!slip.Deductions.Equal(previousDeductions) ||
		!slip.NetSalary.Equal(previousNet)

	employeeName := "Unknown Employee"
	if employee, err := s.users.FindByID(ctx, slip.EmployeeID); err == nil {
		employeeName = employee.FullName
		if moneyChanged {
			subject, body := mailer.SalarySlipBody(employee.FullName, slip.Month, slip.Year, slip.NetSalary, true)
			s.notifier.Dispatch(employee.Email, subject, body)
		}
	}

	view := viewOf(slip, employeeName)
	return &view, nil
}

// ListAll returns every slip with current employee names attached.
func (s *salarySlipService) ListAll(ctx context.Context) ([]SlipView, error) {
	slips, err := s.slips.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list salary slips: %w", err)
	}

	// Names resolve once per employee, not per slip.
	names := make(map[uuid.UUID]string)
	views := make([]SlipView, 0, len(slips))
	for i := range slips {
		name, ok := names[slips[i].EmployeeID]
		if !ok {
			name = s.resolveName(ctx, slips[i].EmployeeID)
			names[slips[i].EmployeeID] = name
		}
		views = append(views, viewOf(&slips[i], name))
	}
	return views, nil
}

// ListForEmployee returns one employee's slips, served through the cache
// when warm.
func (s *salarySlipService) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]SlipView, error) {
	var cached []SlipView
	if s.cache.GetJSON(ctx, slipCacheKey(employeeID), &cached) {
		return cached, nil
	}

	slips, err := s.slips.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list salary slips for employee: %w", err)
	}

	name := s.resolveName(ctx, employeeID)
	views := make([]SlipView, 0, len(slips))
	for i := range slips {
		views = append(views, viewOf(&slips[i], name))
	}

	s.cache.SetJSON(ctx, slipCacheKey(employeeID), views, slipCacheTTL)
	return views, nil
}

// SlipOwner resolves the owning employee of a slip, for ownership checks.
func (s *salarySlipService) SlipOwner(ctx context.Context, slipID uuid.UUID) (uuid.UUID, error) {
	slip, err := s.slips.FindByID(ctx, slipID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, errors.ErrSalarySlipNotFound
		}
		return uuid.Nil, fmt.Errorf("find salary slip: %w", err)
	}
	return slip.EmployeeID, nil
}

// RenderPDF assembles the slip document and renders it. Fails when either
// the slip or its referenced employee is missing.
func (s *salarySlipService) RenderPDF(ctx context.Context, slipID uuid.UUID) ([]byte, error) {
	slip, err := s.slips.FindByID(ctx, slipID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSalarySlipNotFound
		}
		return nil, fmt.Errorf("find salary slip: %w", err)
	}

	employee, err := s.users.FindByID(ctx, slip.EmployeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	doc := &pdf.SlipDocument{
		EmployeeName: employee.FullName,
		EmployeeID:   employee.ID.String(),
		Department:   employee.Department,
		Month:        slip.Month,
		Year:         slip.Year,
		BasicSalary:  slip.BasicSalary,
		Allowances:   slip.Allowances,
		Deductions:   slip.Deductions,
		NetSalary:    slip.NetSalary,
		GeneratedAt:  time.Now(),
	}
	return doc.Render()
}
