package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports process and relational-store liveness.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Welcome handles GET /.
func (h *HealthHandler) Welcome(c echo.Context) error {
	return Success(c, map[string]string{
		"message": "Welcome to the expense management app!",
	})
}

// Healthz handles GET /healthz. Unlike the API envelope, health probes use
// real HTTP statuses so orchestrators can act on them.
func (h *HealthHandler) Healthz(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
