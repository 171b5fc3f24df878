package handler

import (
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the body into input and runs the struct tags through the
// echo validator. Both failures surface as ErrInvalidInput.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
