package dto

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom tags used by request DTOs:
// "frequency" (daily|weekly|monthly|yearly), "ruleaction" (income|transfer|dca)
// and "isodate" (YYYY-MM-DD).
func RegisterValidators(v *validator.Validate) error {
	validations := map[string]validator.Func{
		"frequency":  validateFrequency,
		"ruleaction": validateRuleAction,
		"isodate":    validateISODate,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func validateFrequency(fl validator.FieldLevel) bool {
	return domain.Frequency(fl.Field().String()).Valid()
}

func validateRuleAction(fl validator.FieldLevel) bool {
	_, ok := domain.ParseRuleAction(fl.Field().String())
	return ok
}

func validateISODate(fl validator.FieldLevel) bool {
	_, ok := domain.ParseDate(fl.Field().String())
	return ok
}
