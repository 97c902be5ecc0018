package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator over go-playground/validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the validator echo binds request payloads against.
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
