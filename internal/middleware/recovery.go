package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into the failure envelope. Per the
// API contract even these ride HTTP 200; the stack goes to the log only.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered",
						"trace_id", GetTraceID(c),
						"path", c.Request().URL.Path,
						"panic", fmt.Sprintf("%v", r),
						"stack", string(debug.Stack()),
					)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusOK, map[string]interface{}{
							"status":  "failure",
							"message": "failure",
							"data":    nil,
							"error":   fmt.Sprintf("%v", r),
						})
					}
				}
			}()
			return next(c)
		}
	}
}
