package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// AuthService coordinates login and password flows.
type AuthService struct {
	employees  repository.EmployeeRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, employees repository.EmployeeRepository) *AuthService {
	return &AuthService{
		employees:  employees,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates an employee and issues an access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Employee, string, time.Time, error) {
	employee, err := s.employees.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewBadRequest("Username or password is incorrect")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewBadRequest("Username or password is incorrect")
	}

	token, exp, err := s.tokenMgr.Issue(employee)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// GetInformation returns the employee record behind a claim.
func (s *AuthService) GetInformation(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Employee not found")
		}
		return nil, err
	}
	return employee, nil
}

// ChangePassword rehashes and stores the caller's new password. The payload
// is schema-validated before this runs.
func (s *AuthService) ChangePassword(ctx context.Context, employeeID int64, newPassword string) error {
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.employees.UpdatePassword(ctx, employeeID, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Employee not found")
		}
		return err
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
