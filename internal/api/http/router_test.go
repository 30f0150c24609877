package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/repository"
	"github.com/spec-kit/restaurant-service/internal/service"
)

const testSecret = "test-secret"

// fakeEmployeeRepo serves a fixed set of employees.
type fakeEmployeeRepo struct {
	byUsername map[string]*domain.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	employee.ID = int64(len(f.byUsername) + 1)
	f.byUsername[employee.Username] = employee
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	for _, e := range f.byUsername {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := f.byUsername[username]; ok {
		return e, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) List(context.Context, repository.EmployeeFilter) ([]domain.Employee, error) {
	var result []domain.Employee
	for _, e := range f.byUsername {
		result = append(result, *e)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Count(context.Context, string) (int64, error) {
	return int64(len(f.byUsername)), nil
}

func (f *fakeEmployeeRepo) UpdateRolePosition(context.Context, int64, domain.Role, string) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdatePassword(context.Context, int64, string) error {
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(context.Context, int64) error {
	return nil
}

// fakeDishRepo serves at most one dish; dish tests here exercise validation,
// the gate and the response envelopes, not persistence.
type fakeDishRepo struct {
	dish *domain.Dish
}

func (fakeDishRepo) List(context.Context, repository.DishFilter) ([]domain.Dish, error) {
	return nil, nil
}
func (fakeDishRepo) Count(context.Context, repository.DishFilter) (int64, error) { return 0, nil }
func (f fakeDishRepo) GetByID(context.Context, int64) (*domain.Dish, error) {
	if f.dish != nil {
		return f.dish, nil
	}
	return nil, pgx.ErrNoRows
}
func (fakeDishRepo) ImagesByDishID(context.Context, int64) ([]domain.DishImage, error) {
	return nil, nil
}
func (fakeDishRepo) CreateWithImages(context.Context, *domain.Dish, []string) error { return nil }
func (fakeDishRepo) Update(context.Context, *domain.Dish) error                     { return nil }
func (fakeDishRepo) UpdateWithImages(context.Context, *domain.Dish, []string) error { return nil }
func (fakeDishRepo) Delete(context.Context, int64) error                            { return nil }

type fakeAssetStore struct{}

func (fakeAssetStore) Upload(_ context.Context, filename string, _ io.Reader) (string, error) {
	return "https://assets.example.com/" + filename, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppWithDishes(t, fakeDishRepo{})
}

func newTestAppWithDishes(t *testing.T, dishes repository.DishRepository) *fiber.App {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			AccessTokenSecret:     testSecret,
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}

	adminHash, err := auth.HashPassword("Admin123", 4)
	require.NoError(t, err)
	staffHash, err := auth.HashPassword("Staff123", 4)
	require.NoError(t, err)

	employeeRepo := &fakeEmployeeRepo{byUsername: map[string]*domain.Employee{
		"boss": {ID: 1, Username: "boss", PasswordHash: adminHash, Name: "Boss", Role: domain.RoleAdmin},
		"crew": {ID: 2, Username: "crew", PasswordHash: staffHash, Name: "Crew", Role: domain.RoleStaff},
	}}

	authService := service.NewAuthService(cfg, employeeRepo)
	employeeService := service.NewEmployeeService(cfg, employeeRepo)
	dishService := service.NewDishService(dishes, fakeAssetStore{}, nil)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Dishes:         handlers.NewDishesHandler(dishService),
		Employees:      handlers.NewEmployeesHandler(authService, employeeService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager()),
	})
	return app
}

func login(t *testing.T, app *fiber.App, username, password string) (string, int) {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return parsed.AccessToken, resp.StatusCode
}

func TestLoginIssuesToken(t *testing.T) {
	app := newTestApp(t)

	token, status := login(t, app, "boss", "Admin123")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, token)
}

func TestLoginWrongCredentials(t *testing.T) {
	app := newTestApp(t)

	_, status := login(t, app, "boss", "Nope1234")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdminListWithToken(t *testing.T) {
	app := newTestApp(t)
	token, _ := login(t, app, "boss", "Admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminListWithoutToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Do not have access token!", body["message"])
}

func TestAdminListWithStaffToken(t *testing.T) {
	app := newTestApp(t)
	token, _ := login(t, app, "crew", "Staff123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "You do not have permission!", body["message"])
}

func TestExpiredTokenRejected(t *testing.T) {
	app := newTestApp(t)

	claims := &auth.Claims{
		EmployeeID: 1,
		Username:   "boss",
		Role:       domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Access token may be expired or invalid!", body["message"])
}

func TestCreateDishNegativePrice(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Pho bo"))
	require.NoError(t, writer.WriteField("description", "Beef noodle soup"))
	require.NoError(t, writer.WriteField("price", "-5"))
	require.NoError(t, writer.WriteField("category", "Noodles"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dishes/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, `"price" must be greater than or equal to 0`, body["message"])
}

func updateDishRequest(t *testing.T, thumbnail string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Pho bo"))
	require.NoError(t, writer.WriteField("description", "Beef noodle soup"))
	require.NoError(t, writer.WriteField("price", "45000"))
	require.NoError(t, writer.WriteField("category", "Noodles"))
	if thumbnail != "" {
		require.NoError(t, writer.WriteField("thumbnail", thumbnail))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/dishes/4", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUpdateDishResponseMessages(t *testing.T) {
	app := newTestAppWithDishes(t, fakeDishRepo{
		dish: &domain.Dish{ID: 4, Thumbnail: "https://assets.example.com/old.jpg"},
	})

	cases := []struct {
		name      string
		thumbnail string
		message   string
	}{
		{"fields only", "", "Update dish successfully"},
		{"explicit thumbnail", "https://assets.example.com/new.jpg", "Update dish successfully with change thumbnail!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(updateDishRequest(t, tc.thumbnail))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestGetDishInvalidID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dishes/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid dish id!", body["message"])
}

func TestGetDishMissing(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dishes/99", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Dish not found", body["message"])
}
