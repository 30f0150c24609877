package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	"github.com/spec-kit/restaurant-service/internal/validation"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// defaultAvatar is assigned to every new employee until uploads are supported.
const defaultAvatar = "https://cellphones.com.vn/sforum/wp-content/uploads/2023/10/avatar-trang-4.jpg"

// EmployeeService implements the admin-gated employee operations.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	bcryptCost int
}

// NewEmployeeService builds the service.
func NewEmployeeService(cfg config.Config, employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees, bcryptCost: cfg.Auth.BcryptCost}
}

// EmployeePage is one page of a keyword search.
type EmployeePage struct {
	Employees []domain.Employee
	TotalPage int64
}

// Create validates nothing itself: the payload passed schema validation at
// the boundary. It rejects duplicate usernames and stores a bcrypt hash.
func (s *EmployeeService) Create(ctx context.Context, in validation.EmployeeInput) (*domain.Employee, error) {
	if _, err := s.employees.GetByUsername(ctx, in.Username); err == nil {
		return nil, apperrors.NewBadRequest("Username already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         domain.Role(in.Role),
		Position:     in.Position,
		HireDate:     validation.HireDate(in.HireDate),
		Avatar:       defaultAvatar,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// List returns one page of non-deleted employees matching the keyword.
func (s *EmployeeService) List(ctx context.Context, page, limit int, keyword string) (*EmployeePage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.employees.Count(ctx, keyword)
	if err != nil {
		return nil, err
	}

	list, err := s.employees.List(ctx, repository.EmployeeFilter{
		Keyword: keyword,
		Limit:   limit,
		Offset:  (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	totalPage := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPage++
	}
	return &EmployeePage{Employees: list, TotalPage: totalPage}, nil
}

// GetByID fetches a single employee.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Employee not found")
		}
		return nil, err
	}
	return employee, nil
}

// Update changes role and position only.
func (s *EmployeeService) Update(ctx context.Context, id int64, role domain.Role, position string) error {
	if err := s.employees.UpdateRolePosition(ctx, id, role, position); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Employee not found")
		}
		return err
	}
	return nil
}

// Delete soft-deletes the employee; the record stays in the store.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Employee not found")
		}
		return err
	}
	return nil
}
