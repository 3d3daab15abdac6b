package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"payroll/internal/auth"
	"payroll/internal/errors"
	"payroll/internal/mailer"
	"payroll/internal/model"
	"payroll/internal/notify"
	"payroll/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login, and profile reads.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string, role model.Role) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	CurrentUser(ctx context.Context, identity *auth.Identity) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	jwt      *auth.JWTService
	notifier *notify.Notifier
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService, notifier *notify.Notifier) AuthService {
	return &authService{
		users:    users,
		jwt:      jwt,
		notifier: notifier,
	}
}

// Register creates a new user with a hashed password and logs them straight
// in. Employee signups trigger a welcome email and an alert to every admin,
// both best-effort.
func (s *authService) Register(ctx context.Context, email, password, fullName string, role model.Role) (string, *model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, errors.ErrDuplicateEmail
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	if !role.Valid() {
		role = model.RoleEmployee
	}
	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	if user.Role == model.RoleEmployee {
		subject, body := mailer.RegistrationBody(user.FullName, user.Email)
		s.notifier.Dispatch(user.Email, subject, body)

		// Admin lookup failures only cost the alert email.
		if admins, err := s.users.ListByRole(ctx, model.RoleAdmin); err == nil {
			for _, admin := range admins {
				subject, body := mailer.AdminNewEmployeeBody(user.FullName, user.Email)
				s.notifier.Dispatch(admin.Email, subject, body)
			}
		}
	}

	return token, user, nil
}

// Login authenticates a user and returns a fresh session token. Unknown
// email and wrong password produce the identical error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// CurrentUser re-reads the authenticated user's profile.
func (s *authService) CurrentUser(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
