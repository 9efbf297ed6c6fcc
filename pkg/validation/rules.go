package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("tipo_equipo", isEquipmentTipo); err != nil {
		return err
	}
	if err := v.RegisterValidation("station_type", isStationType); err != nil {
		return err
	}
	if err := v.RegisterValidation("custom_email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

// isEquipmentTipo - categorías de equipo admitidas, sin importar mayúsculas
func isEquipmentTipo(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "CPU", "MONITOR", "LAPTOP", "IMPRESORA":
		return true
	}
	return false
}

func isStationType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cpu-monitor", "laptop", "impresora":
		return true
	}
	return false
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}
