package handlers

import (
	"household-expenses/internal/validation"

	"github.com/labstack/echo/v4"
)

// requestValidator runs the household rule set for c.Validate. Failures are returned
// untouched and rendered by the HTTP error handler with one detail per field.
type requestValidator struct {
	rules *validation.Validator
}

func NewValidator() echo.Validator {
	return requestValidator{rules: validation.GetValidator()}
}

func (v requestValidator) Validate(i interface{}) error {
	return v.rules.Struct(i)
}
