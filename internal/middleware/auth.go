package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"expense-manager/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthConfig carries the HS256 verification settings. Tokens are issued by
// the identity flow; this service only verifies them and extracts the
// trusted {user_id, user_role} pair every handler runs under.
type AuthConfig struct {
	Secret []byte
	Leeway time.Duration
}

// Claims is the verified token payload.
type Claims struct {
	UserID   string `json:"user_id"`
	UserRole string `json:"user_role"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the bearer token and populates the request context.
// Authentication failures are transport-level and use 401, not the envelope.
func RequireAuth(cfg AuthConfig) echo.MiddlewareFunc {
	parser := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(cfg.Leeway),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "missing authorization header")
			}

			token, err := extractBearer(authHeader)
			if err != nil {
				return unauthorized(c, err.Error())
			}

			claims := &Claims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				return cfg.Secret, nil
			}, parser...)
			if err != nil || !parsed.Valid {
				return unauthorized(c, "invalid or expired token")
			}
			if claims.UserID == "" {
				return unauthorized(c, "token carries no user id")
			}

			c.Set(handlers.UserIDContextKey, claims.UserID)
			c.Set(handlers.UserRoleContextKey, claims.UserRole)
			return next(c)
		}
	}
}

func extractBearer(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errMalformedAuthHeader
	}
	return parts[1], nil
}

var errMalformedAuthHeader = errors.New("malformed authorization header")

func unauthorized(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"status":  "failure",
		"message": "Unauthorized",
		"error":   detail,
	})
}
