package handler

import (
	domainerrors "fuelradar/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds path, query and body parameters into req and validates it.
// Failures come back as domain errors so handlers render them like any other.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request parameters")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
