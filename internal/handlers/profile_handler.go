package handlers

import (
	"context"

	"expense-manager/internal/dto"

	"github.com/labstack/echo/v4"
)

// ProfileServiceInterface is the service surface the profile handler needs.
type ProfileServiceInterface interface {
	Update(ctx context.Context, req dto.UpdateProfileRequest, userID string) error
}

// ProfileHandler handles user profile HTTP requests.
type ProfileHandler struct {
	profiles ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Update handles POST /user/update. Data is null on success.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return Failure(c, "Failed to update user info", err)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, "Failed to update user info", err)
	}
	if err := c.Validate(&req); err != nil {
		return Failure(c, "Failed to update user info", err)
	}

	if err := h.profiles.Update(c.Request().Context(), req, userID); err != nil {
		return Failure(c, "Failed to update user info", err)
	}
	return Success(c, nil)
}
