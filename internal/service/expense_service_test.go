package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"payroll/internal/errors"
	"payroll/internal/model"
	"payroll/internal/notify"
)

func TestExpenseService_Submit(t *testing.T) {
	employeeID := uuid.New()

	mockClaims := new(MockExpenseRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{
		ID:       employeeID,
		Email:    "alice@example.com",
		FullName: "Alice Johnson",
		Role:     model.RoleEmployee,
	}, nil)
	mockUsers.On("ListByRole", mock.Anything, model.RoleAdmin).Return([]model.User{
		{Email: "admin@example.com", Role: model.RoleAdmin},
	}, nil)
	mockClaims.On("Create", mock.Anything, mock.AnythingOfType("*model.ExpenseClaim")).Return(nil)

	captured := &capturingMailer{}
	notifier := notify.New(captured)
	service := NewExpenseService(mockClaims, mockUsers, notifier)

	claim, err := service.Submit(context.Background(), employeeID, ExpenseInput{
		Title:    "Taxi",
		Amount:   decimal.NewFromInt(45),
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category: "Travel",
	})
	notifier.Wait()

	assert.NoError(t, err)
	assert.Equal(t, model.ExpenseStatusPending, claim.Status)
	assert.Equal(t, "Alice Johnson", claim.EmployeeName)
	assert.False(t, claim.SubmittedAt.IsZero())

	// Submitter confirmation plus admin alert.
	messages := captured.messages()
	assert.Len(t, messages, 2)
	recipients := []string{messages[0].To, messages[1].To}
	assert.Contains(t, recipients, "alice@example.com")
	assert.Contains(t, recipients, "admin@example.com")

	mockClaims.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestExpenseService_Submit_MissingUserStillCreatesClaim(t *testing.T) {
	employeeID := uuid.New()

	mockClaims := new(MockExpenseRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("ListByRole", mock.Anything, model.RoleAdmin).Return([]model.User{}, nil)
	mockClaims.On("Create", mock.Anything, mock.AnythingOfType("*model.ExpenseClaim")).Return(nil)

	service := NewExpenseService(mockClaims, mockUsers, notify.New(&capturingMailer{}))

	claim, err := service.Submit(context.Background(), employeeID, ExpenseInput{
		Title:    "Lunch",
		Amount:   decimal.NewFromInt(12),
		Date:     time.Now(),
		Category: "Meals",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Unknown Employee", claim.EmployeeName)
}

func TestExpenseService_Decide(t *testing.T) {
	claimID := uuid.New()
	employeeID := uuid.New()

	pendingClaim := func() *model.ExpenseClaim {
		return &model.ExpenseClaim{
			ID:           claimID,
			EmployeeID:   employeeID,
			EmployeeName: "Alice Johnson",
			Title:        "Taxi",
			Amount:       decimal.NewFromInt(45),
			Status:       model.ExpenseStatusPending,
		}
	}

	tests := []struct {
		name           string
		outcome        model.ExpenseStatus
		setupMock      func(*MockExpenseRepository, *MockUserRepository)
		expectedError  error
		expectedStatus model.ExpenseStatus
	}{
		{
			name:    "approve pending claim",
			outcome: model.ExpenseStatusApproved,
			setupMock: func(mClaims *MockExpenseRepository, mUsers *MockUserRepository) {
				mClaims.On("FindByID", mock.Anything, claimID).Return(pendingClaim(), nil)
				mClaims.On("Update", mock.Anything, mock.AnythingOfType("*model.ExpenseClaim")).Return(nil)
				mUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{
					ID:    employeeID,
					Email: "alice@example.com",
				}, nil)
			},
			expectedStatus: model.ExpenseStatusApproved,
		},
		{
			name:    "reject pending claim",
			outcome: model.ExpenseStatusRejected,
			setupMock: func(mClaims *MockExpenseRepository, mUsers *MockUserRepository) {
				mClaims.On("FindByID", mock.Anything, claimID).Return(pendingClaim(), nil)
				mClaims.On("Update", mock.Anything, mock.AnythingOfType("*model.ExpenseClaim")).Return(nil)
				mUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{
					ID:    employeeID,
					Email: "alice@example.com",
				}, nil)
			},
			expectedStatus: model.ExpenseStatusRejected,
		},
		{
			name:    "claim not found",
			outcome: model.ExpenseStatusApproved,
			setupMock: func(mClaims *MockExpenseRepository, mUsers *MockUserRepository) {
				mClaims.On("FindByID", mock.Anything, claimID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrExpenseNotFound,
		},
		{
			name:    "already approved claim cannot be rejected",
			outcome: model.ExpenseStatusRejected,
			setupMock: func(mClaims *MockExpenseRepository, mUsers *MockUserRepository) {
				decided := pendingClaim()
				decided.Status = model.ExpenseStatusApproved
				mClaims.On("FindByID", mock.Anything, claimID).Return(decided, nil)
			},
			expectedError: errors.ErrInvalidStateTransition,
		},
		{
			name:    "already rejected claim cannot be approved",
			outcome: model.ExpenseStatusApproved,
			setupMock: func(mClaims *MockExpenseRepository, mUsers *MockUserRepository) {
				decided := pendingClaim()
				decided.Status = model.ExpenseStatusRejected
				mClaims.On("FindByID", mock.Anything, claimID).Return(decided, nil)
			},
			expectedError: errors.ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClaims := new(MockExpenseRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockClaims, mockUsers)

			notifier := notify.New(&capturingMailer{})
			service := NewExpenseService(mockClaims, mockUsers, notifier)

			claim, err := service.Decide(context.Background(), claimID, tt.outcome)
			notifier.Wait()

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, claim)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, claim.Status)
			}

			mockClaims.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestExpenseService_Decide_RejectsBogusOutcome(t *testing.T) {
	service := NewExpenseService(new(MockExpenseRepository), new(MockUserRepository), notify.New(&capturingMailer{}))

	_, err := service.Decide(context.Background(), uuid.New(), model.ExpenseStatusPending)
	assert.Error(t, err)
}

func TestExpenseService_Decide_NotifiesClaimOwner(t *testing.T) {
	claimID := uuid.New()
	employeeID := uuid.New()

	mockClaims := new(MockExpenseRepository)
	mockClaims.On("FindByID", mock.Anything, claimID).Return(&model.ExpenseClaim{
		ID:           claimID,
		EmployeeID:   employeeID,
		EmployeeName: "Alice Johnson",
		Title:        "Taxi",
		Amount:       decimal.NewFromInt(45),
		Status:       model.ExpenseStatusPending,
	}, nil)
	mockClaims.On("Update", mock.Anything, mock.AnythingOfType("*model.ExpenseClaim")).Return(nil)

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{
		ID:    employeeID,
		Email: "alice@example.com",
	}, nil)

	captured := &capturingMailer{}
	notifier := notify.New(captured)
	service := NewExpenseService(mockClaims, mockUsers, notifier)

	_, err := service.Decide(context.Background(), claimID, model.ExpenseStatusApproved)
	assert.NoError(t, err)
	notifier.Wait()

	messages := captured.messages()
	assert.Len(t, messages, 1)
	assert.Equal(t, "alice@example.com", messages[0].To)
	assert.Contains(t, messages[0].Subject, "Approved")
}
