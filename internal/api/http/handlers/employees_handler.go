package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
	"github.com/spec-kit/restaurant-service/internal/validation"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// EmployeesHandler exposes employee administration endpoints.
type EmployeesHandler struct {
	authService     *service.AuthService
	employeeService *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(authService *service.AuthService, employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{authService: authService, employeeService: employeeService}
}

// Login handles POST /api/v1/employees/login.
func (h *EmployeesHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	employee, token, _, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Status:      http.StatusOK,
		Message:     "Login successfully",
		Name:        employee.Name,
		Role:        string(employee.Role),
		AccessToken: token,
	})
}

// GetInformation handles GET /api/v1/employees/infor.
func (h *EmployeesHandler) GetInformation(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Do not have access token!")
	}

	employee, err := h.authService.GetInformation(c.Context(), claims.EmployeeID)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(employee))
}

// ChangePassword handles PATCH /api/v1/employees/change-password.
func (h *EmployeesHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Do not have access token!")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := validation.ValidatePasswordChange(req.NewPassword); err != nil {
		return apperrors.NewValidationError(err.Message)
	}

	if err := h.authService.ChangePassword(c.Context(), claims.EmployeeID, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// Create handles POST /api/v1/employees/create.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	input := validation.EmployeeInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.Role,
		Position: req.Position,
		HireDate: req.HireDate,
	}
	if err := validation.ValidateEmployee(input); err != nil {
		return apperrors.NewValidationError(err.Message)
	}

	if _, err := h.employeeService.Create(c.Context(), input); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Employee created successfully"})
}

// List handles GET /api/v1/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)
	keyword := c.Query("keyword")

	result, err := h.employeeService.List(c.Context(), page, limit, keyword)
	if err != nil {
		return err
	}

	employees := make([]dto.EmployeeResponse, 0, len(result.Employees))
	for i := range result.Employees {
		employees = append(employees, employeeResponse(&result.Employees[i]))
	}
	return c.JSON(fiber.Map{"employees": employees, "totalPage": result.TotalPage})
}

// GetByID handles GET /api/v1/employees/:id.
func (h *EmployeesHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.employeeService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(employee))
}

// Update handles PATCH /api/v1/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	if err := h.employeeService.Update(c.Context(), id, domain.Role(req.Role), req.Position); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee updated successfully"})
}

// Delete handles DELETE /api/v1/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.employeeService.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequest("Invalid id!")
	}
	return id, nil
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

func employeeResponse(employee *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeID: employee.ID,
		Username:   employee.Username,
		Name:       employee.Name,
		Phone:      employee.Phone,
		Role:       string(employee.Role),
		Position:   employee.Position,
		HireDate:   employee.HireDate,
		Avatar:     employee.Avatar,
	}
}
