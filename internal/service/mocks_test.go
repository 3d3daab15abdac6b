package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"payroll/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, claim *model.ExpenseClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, claim *model.ExpenseClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ExpenseClaim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExpenseClaim), args.Error(1)
}

func (m *MockExpenseRepository) ListAll(ctx context.Context) ([]model.ExpenseClaim, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseClaim), args.Error(1)
}

func (m *MockExpenseRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseClaim, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseClaim), args.Error(1)
}

// MockSalarySlipRepository is a mock implementation of SalarySlipRepository.
type MockSalarySlipRepository struct {
	mock.Mock
}

func (m *MockSalarySlipRepository) Create(ctx context.Context, slip *model.SalarySlip) error {
	args := m.Called(ctx, slip)
	return args.Error(0)
}

func (m *MockSalarySlipRepository) Update(ctx context.Context, slip *model.SalarySlip) error {
	args := m.Called(ctx, slip)
	return args.Error(0)
}

func (m *MockSalarySlipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SalarySlip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SalarySlip), args.Error(1)
}

func (m *MockSalarySlipRepository) ListAll(ctx context.Context) ([]model.SalarySlip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SalarySlip), args.Error(1)
}

func (m *MockSalarySlipRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.SalarySlip, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SalarySlip), args.Error(1)
}

// capturingMailer records every message handed to it.
type capturingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *capturingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *capturingMailer) messages() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}
