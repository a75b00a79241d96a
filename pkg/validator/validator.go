package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator using go-playground/validator
type RequestValidator struct {
	v *validator.Validate
}

// New creates a new RequestValidator instance
func New() *RequestValidator {
	return &RequestValidator{v: validator.New()}
}

// Validate performs struct validation
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
