package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

const claimsKey = "auth_claims"

// Middleware is the authentication stage of the gate. It is a pure function
// of the incoming request, the signing secret and the current time: no store
// lookup happens here, the claim snapshot is trusted until it expires.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the authentication middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate enforces a Bearer token on protected routes and attaches the
// decoded claims to the request context.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Do not have access token!")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	token := parts[len(parts)-1]

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewForbidden("Access token may be expired or invalid!")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
