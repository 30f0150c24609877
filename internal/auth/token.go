package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// ErrTokenInvalid covers malformed, tampered and expired tokens alike; the
// boundary does not distinguish between them.
var ErrTokenInvalid = errors.New("access token expired or invalid")

// ErrMissingSecret is returned when the manager was built without a secret.
var ErrMissingSecret = errors.New("signing secret not configured")

// TokenManager handles issuing and validating JWT access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager. The secret is process-wide and never
// rotated at runtime.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		now:    time.Now,
	}
}

// Claims describes the JWT payload: a snapshot of the employee's identity
// valid until the token expires.
type Claims struct {
	EmployeeID int64       `json:"id"`
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs an access token for the employee.
func (tm *TokenManager) Issue(employee *domain.Employee) (string, time.Time, error) {
	if len(tm.secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}

	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	claims := &Claims{
		EmployeeID: employee.ID,
		Username:   employee.Username,
		Role:       employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded claims.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
