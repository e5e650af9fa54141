package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"rental-system/pkg/constants"
)

// RegisterCustomValidations wires the domain rules into the validator
// instance used by echo.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("unit_status", isValidUnitStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("event_status", isValidEventStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("employee_type", isValidEmployeeType); err != nil {
		return err
	}
	return nil
}

func isValidUnitStatus(fl validator.FieldLevel) bool {
	return constants.IsValidUnitStatus(fl.Field().String())
}

func isValidEventStatus(fl validator.FieldLevel) bool {
	return constants.IsValidEventStatus(fl.Field().String())
}

func isValidEmployeeType(fl validator.FieldLevel) bool {
	return constants.IsValidEmployeeType(fl.Field().String())
}
