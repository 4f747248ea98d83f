package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ticketCategoryRgx = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("ticket_category", validateTicketCategory)
	validator.RegisterValidation("nonneg_decimal", validateNonNegativeDecimal)

	return validator
}

func validateTicketCategory(fl validator.FieldLevel) bool {
	return ticketCategoryRgx.MatchString(fl.Field().String())
}

func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return !value.IsNegative()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", err.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "ticket_category":
		return "must be an upper-case ticket category name such as ADULT"
	case "nonneg_decimal":
		return "must be a non-negative decimal number"
	case "unique":
		return "must not contain duplicates"
	default:
		return "is invalid"
	}
}
