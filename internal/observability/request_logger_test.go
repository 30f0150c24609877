package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestLoggerRecordsCounters(t *testing.T) {
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, int64(2), metrics.RequestTotal("/ping", fiber.MethodGet, fiber.StatusOK))
	assert.Zero(t, metrics.RequestTotal("/ping", fiber.MethodPost, fiber.StatusOK))
}
