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
	"payroll/internal/repository"
)

const (
	employeeCacheKey = "employees:all"
	employeeCacheTTL = 5 * time.Minute
)

// EmployeeSummary is the display shape of an employee record. Department
// and salary fall back to display defaults when unassigned; the defaults
// are never persisted.
type EmployeeSummary struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
}

// EmployeeUpdate carries the admin-editable fields. Nil means "leave as is".
type EmployeeUpdate struct {
	Department *string
	Salary     *decimal.Decimal
}

// EmployeeService handles the employee directory.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeSummary, error)
	Update(ctx context.Context, employeeID uuid.UUID, update EmployeeUpdate) (*EmployeeSummary, error)
}

type employeeService struct {
	users    repository.UserRepository
	cache    *cache.Client
	notifier *notify.Notifier
}

// NewEmployeeService creates a new employee directory service.
func NewEmployeeService(users repository.UserRepository, cacheClient *cache.Client, notifier *notify.Notifier) EmployeeService {
	return &employeeService{
		users:    users,
		cache:    cacheClient,
		notifier: notifier,
	}
}

// Summarize converts a user to its display shape.
func Summarize(user *model.User) EmployeeSummary {
	department := user.Department
	if department == "" {
		department = "Not assigned"
	}
	return EmployeeSummary{
		ID:         user.ID,
		Name:       user.FullName,
		Email:      user.Email,
		Department: department,
		Salary:     user.Salary,
	}
}

// List returns all employee records (admins excluded), served through the
// cache when warm.
func (s *employeeService) List(ctx context.Context) ([]EmployeeSummary, error) {
	var cached []EmployeeSummary
	if s.cache.GetJSON(ctx, employeeCacheKey, &cached) {
		return cached, nil
	}

	employees, err := s.users.ListByRole(ctx, model.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	summaries := make([]EmployeeSummary, 0, len(employees))
	for i := range employees {
		summaries = append(summaries, Summarize(&employees[i]))
	}

	s.cache.SetJSON(ctx, employeeCacheKey, summaries, employeeCacheTTL)
	return summaries, nil
}

// Update applies department and/or salary changes. Setting a non-empty
// department emits a DepartmentAssigned notification; the notification is
// per-call, not deduplicated against prior assignments.
func (s *employeeService) Update(ctx context.Context, employeeID uuid.UUID, update EmployeeUpdate) (*EmployeeSummary, error) {
	if update.Department == nil && update.Salary == nil {
		return nil, errors.ErrNothingToUpdate
	}

	employee, err := s.users.FindByID(ctx, employeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	if update.Department != nil {
		employee.Department = *update.Department
	}
	if update.Salary != nil {
		employee.Salary = *update.Salary
	}

	if err := s.users.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	_ = s.cache.Delete(ctx, employeeCacheKey)

	if update.Department != nil && *update.Department != "" {
		subject, body := mailer.DepartmentAssignmentBody(employee.FullName, employee.Department, employee.Salary)
		s.notifier.Dispatch(employee.Email, subject, body)
	}

	summary := Summarize(employee)
	return &summary, nil
}
