package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// EmployeeRepository defines persistence access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Count(ctx context.Context, keyword string) (int64, error)
	UpdateRolePosition(ctx context.Context, id int64, role domain.Role, position string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SoftDelete(ctx context.Context, id int64) error
}

// EmployeeFilter defines query params for employee listing.
type EmployeeFilter struct {
	Keyword string
	Limit   int
	Offset  int
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (username, password_hash, name, phone, role, position, hire_date, avatar)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING employee_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		employee.Username,
		employee.PasswordHash,
		employee.Name,
		employee.Phone,
		employee.Role,
		employee.Position,
		employee.HireDate,
		employee.Avatar,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT employee_id, username, password_hash, name, phone, role, position, hire_date, avatar, deleted, created_at, updated_at
        FROM employees WHERE employee_id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	const query = `
        SELECT employee_id, username, password_hash, name, phone, role, position, hire_date, avatar, deleted, created_at, updated_at
        FROM employees WHERE username=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, username))
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	const query = `
        SELECT employee_id, username, password_hash, name, phone, role, position, hire_date, avatar, deleted, created_at, updated_at
        FROM employees
        WHERE name ILIKE $1 AND deleted=$2
        ORDER BY employee_id
        LIMIT $3 OFFSET $4`

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, query, "%"+filter.Keyword+"%", false, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		employee, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Count(ctx context.Context, keyword string) (int64, error) {
	const query = `SELECT COUNT(*) FROM employees WHERE name ILIKE $1 AND deleted=$2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, "%"+keyword+"%", false).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *employeeRepository) UpdateRolePosition(ctx context.Context, id int64, role domain.Role, position string) error {
	const query = `UPDATE employees SET role=$1, position=$2, updated_at=NOW() WHERE employee_id=$3`

	cmd, err := r.pool.Exec(ctx, query, role, position, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE employees SET password_hash=$1, updated_at=NOW() WHERE employee_id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE employees SET deleted=$1, updated_at=NOW() WHERE employee_id=$2`

	cmd, err := r.pool.Exec(ctx, query, true, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) scanOne(row pgx.Row) (*domain.Employee, error) {
	var employee domain.Employee
	if err := row.Scan(
		&employee.ID,
		&employee.Username,
		&employee.PasswordHash,
		&employee.Name,
		&employee.Phone,
		&employee.Role,
		&employee.Position,
		&employee.HireDate,
		&employee.Avatar,
		&employee.Deleted,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}
