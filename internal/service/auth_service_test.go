package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"payroll/internal/auth"
	"payroll/internal/errors"
	"payroll/internal/model"
	"payroll/internal/notify"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		fullName      string
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  model.Role
	}{
		{
			name:     "successful employee registration",
			email:    "test@example.com",
			password: "password123",
			fullName: "Test User",
			role:     model.RoleEmployee,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				m.On("ListByRole", mock.Anything, model.RoleAdmin).Return([]model.User{}, nil)
			},
			expectedError: nil,
			expectedRole:  model.RoleEmployee,
		},
		{
			name:     "unknown role defaults to employee",
			email:    "odd@example.com",
			password: "password123",
			fullName: "Odd Role",
			role:     model.Role("superuser"),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "odd@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				m.On("ListByRole", mock.Anything, model.RoleAdmin).Return([]model.User{}, nil)
			},
			expectedError: nil,
			expectedRole:  model.RoleEmployee,
		},
		{
			name:     "duplicate email",
			email:    "existing@example.com",
			password: "password123",
			fullName: "Existing User",
			role:     model.RoleEmployee,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: errors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			notifier := notify.New(&capturingMailer{})

			service := NewAuthService(mockRepo, jwtService, notifier)
			token, user, err := service.Register(context.Background(), tt.email, tt.password, tt.fullName, tt.role)
			notifier.Wait()

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_SendsWelcomeAndAdminAlerts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	mockRepo.On("ListByRole", mock.Anything, model.RoleAdmin).Return([]model.User{
		{Email: "admin@example.com", Role: model.RoleAdmin},
	}, nil)

	captured := &capturingMailer{}
	notifier := notify.New(captured)
	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), notifier)

	_, _, err := service.Register(context.Background(), "new@example.com", "password123", "New Employee", model.RoleEmployee)
	assert.NoError(t, err)
	notifier.Wait()

	messages := captured.messages()
	assert.Len(t, messages, 2)
	recipients := []string{messages[0].To, messages[1].To}
	assert.Contains(t, recipients, "new@example.com")
	assert.Contains(t, recipients, "admin@example.com")
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					FullName:     "Test User",
					Role:         model.RoleEmployee,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "hunter2",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), notify.New(&capturingMailer{}))
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "present@example.com").Return(&model.User{
		Email:        "present@example.com",
		PasswordHash: string(hashedPassword),
	}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "absent@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), notify.New(&capturingMailer{}))

	_, _, errWrongPassword := service.Login(context.Background(), "present@example.com", "wrong")
	_, _, errUnknownEmail := service.Login(context.Background(), "absent@example.com", "wrong")

	assert.Equal(t, errWrongPassword, errUnknownEmail)
	assert.Equal(t, errors.ErrInvalidCredentials.Error(), errWrongPassword.Error())
}
