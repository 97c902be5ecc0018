package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the authenticated user context is missing.
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Context keys populated by the auth middleware.
const (
	UserIDContextKey   = "user_id"
	UserRoleContextKey = "user_role"
)

// userIDFromContext extracts the trusted user id the auth middleware set.
func userIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get(UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}
