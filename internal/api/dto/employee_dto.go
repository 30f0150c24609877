package dto

import "time"

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the envelope the clients already consume.
type LoginResponse struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// EmployeeCreateRequest payload for admin employee creation.
type EmployeeCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Position string `json:"position"`
	HireDate string `json:"hire_date"`
}

// EmployeeUpdateRequest payload; only role and position are mutable.
type EmployeeUpdateRequest struct {
	Role     string `json:"role"`
	Position string `json:"position"`
}

// ChangePasswordRequest payload for authenticated password changes.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// EmployeeResponse is the public shape of an employee record.
type EmployeeResponse struct {
	EmployeeID int64     `json:"employee_id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Position   string    `json:"position"`
	HireDate   time.Time `json:"hire_date"`
	Avatar     string    `json:"avatar"`
}
