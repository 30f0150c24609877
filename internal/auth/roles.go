package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// RequireAdmin is the authorization stage of the gate. It runs only on
// routes declared privileged and always after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Do not have access token!")
		}
		if !claims.Role.IsAdmin() {
			return apperrors.NewForbidden("You do not have permission!")
		}
		return c.Next()
	}
}
