package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"payroll/internal/errors"
	"payroll/internal/mailer"
	"payroll/internal/model"
	"payroll/internal/notify"
	"payroll/internal/repository"
)

// ExpenseInput carries the fields an employee supplies when submitting a claim.
type ExpenseInput struct {
	Title       string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Description string
}

// ExpenseService handles the expense claim workflow:
// pending -> approved or pending -> rejected, each exactly once.
type ExpenseService interface {
	Submit(ctx context.Context, employeeID uuid.UUID, input ExpenseInput) (*model.ExpenseClaim, error)
	ListAll(ctx context.Context) ([]model.ExpenseClaim, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseClaim, error)
	Decide(ctx context.Context, claimID uuid.UUID, outcome model.ExpenseStatus) (*model.ExpenseClaim, error)
}

type expenseService struct {
	claims   repository.ExpenseRepository
	users    repository.UserRepository
	notifier *notify.Notifier
}

// NewExpenseService creates a new expense workflow service.
func NewExpenseService(claims repository.ExpenseRepository, users repository.UserRepository, notifier *notify.Notifier) ExpenseService {
	return &expenseService{
		claims:   claims,
		users:    users,
		notifier: notifier,
	}
}

// Submit creates a pending claim. The submitter's name is snapshotted on the
// claim and not refreshed by later profile changes. A confirmation goes to
// the submitter and an alert to the first admin, both best-effort.
func (s *expenseService) Submit(ctx context.Context, employeeID uuid.UUID, input ExpenseInput) (*model.ExpenseClaim, error) {
	employeeName := "Unknown Employee"
	employeeEmail := ""
	if employee, err := s.users.FindByID(ctx, employeeID); err == nil {
		employeeName = employee.FullName
		employeeEmail = employee.Email
	}

	claim := &model.ExpenseClaim{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Title:        input.Title,
		Amount:       input.Amount,
		Date:         input.Date,
		Category:     input.Category,
		Description:  input.Description,
		Status:       model.ExpenseStatusPending,
		SubmittedAt:  time.Now(),
	}

	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	if admins, err := s.users.ListByRole(ctx, model.RoleAdmin); err == nil && len(admins) > 0 {
		subject, body := mailer.ExpenseSubmittedAdminBody(employeeName, claim.Title, claim.Amount)
		s.notifier.Dispatch(admins[0].Email, subject, body)
	}
	subject, body := mailer.ExpenseSubmittedEmployeeBody(employeeName, claim.Title, claim.Amount)
	s.notifier.Dispatch(employeeEmail, subject, body)

	return claim, nil
}

// ListAll returns every claim, newest submission first.
func (s *expenseService) ListAll(ctx context.Context) ([]model.ExpenseClaim, error) {
	claims, err := s.claims.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return claims, nil
}

// ListForEmployee returns one employee's claims.
func (s *expenseService) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseClaim, error) {
	claims, err := s.claims.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list expenses for employee: %w", err)
	}
	return claims, nil
}

// Decide moves a pending claim to approved or rejected. Claims that are
// already decided stay decided.
func (s *expenseService) Decide(ctx context.Context, claimID uuid.UUID, outcome model.ExpenseStatus) (*model.ExpenseClaim, error) {
	if outcome != model.ExpenseStatusApproved && outcome != model.ExpenseStatusRejected {
		return nil, fmt.Errorf("invalid outcome %q", outcome)
	}

	claim, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}

	if claim.Status != model.ExpenseStatusPending {
		return nil, errors.ErrInvalidStateTransition
	}

	claim.Status = outcome
	if err := s.claims.Update(ctx, claim); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	if employee, err := s.users.FindByID(ctx, claim.EmployeeID); err == nil {
		subject, body := mailer.ExpenseDecisionBody(claim.EmployeeName, claim.Title, claim.Amount, outcome == model.ExpenseStatusApproved)
		s.notifier.Dispatch(employee.Email, subject, body)
	}

	return claim, nil
}
