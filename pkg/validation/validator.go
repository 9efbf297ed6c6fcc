package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator - envoltura para usarse como echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func New() *CustomValidator {
	v := validator.New()

	registerNullTypes(v)

	// Si una regla crítica no se registra, el servidor no debe arrancar
	if err := registerRules(v); err != nil {
		panic("error registrando validadores: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
