package domain

import "time"

// Role enumerates employee roles. Only admins may manage other employees.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IsAdmin reports whether the role grants employee administration.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Employee models a restaurant employee account.
type Employee struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Phone        string
	Role         Role
	Position     string
	HireDate     time.Time
	Avatar       string
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
