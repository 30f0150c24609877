package validation

import (
	"fmt"
	"time"
	"unicode"
)

const (
	passwordMessage = `%q must be between 6-30 characters long, include at least one uppercase letter, one lowercase letter, and one digit.`
	phoneMessage    = `"phone" must contain only digits and be at least 10 characters long.`
	hireDateMessage = `"hire_date" must be in the format YYYY-MM-DD.`
)

// EmployeeInput is the employee-create payload before validation.
type EmployeeInput struct {
	Username string
	Password string
	Name     string
	Phone    string
	Role     string
	Position string
	HireDate string
}

// ValidateEmployee checks the employee-create schema. Fields are validated
// in declaration order and only the first violation is reported.
func ValidateEmployee(in EmployeeInput) *FieldError {
	if err := required("username", in.Username); err != nil {
		return err
	}
	if len(in.Username) < 4 {
		return &FieldError{Field: "username", Message: `"username" length must be at least 4 characters long`}
	}
	if err := validatePassword("password", in.Password); err != nil {
		return err
	}
	if err := required("name", in.Name); err != nil {
		return err
	}
	if err := required("phone", in.Phone); err != nil {
		return err
	}
	if !phoneOK(in.Phone) {
		return &FieldError{Field: "phone", Message: phoneMessage}
	}
	if err := required("role", in.Role); err != nil {
		return err
	}
	if err := required("position", in.Position); err != nil {
		return err
	}
	if err := required("hire_date", in.HireDate); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", in.HireDate); err != nil {
		return &FieldError{Field: "hire_date", Message: hireDateMessage}
	}
	return nil
}

// ValidatePasswordChange checks the password-change schema.
func ValidatePasswordChange(newPassword string) *FieldError {
	return validatePassword("newPassword", newPassword)
}

// HireDate parses a validated hire_date value.
func HireDate(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func validatePassword(field, password string) *FieldError {
	if err := required(field, password); err != nil {
		return err
	}
	if !passwordOK(password) {
		return &FieldError{Field: field, Message: fmt.Sprintf(passwordMessage, field)}
	}
	return nil
}

// passwordOK enforces the complexity policy: 6-30 chars with at least one
// digit, one lowercase and one uppercase letter.
func passwordOK(password string) bool {
	if len(password) < 6 || len(password) > 30 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}

// phoneOK requires digits only and at least 10 characters.
func phoneOK(phone string) bool {
	if len(phone) < 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
