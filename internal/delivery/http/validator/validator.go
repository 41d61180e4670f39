// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"fmt"
	"strings"
	"time"

	domainerrors "taskward/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const dueDateLayout = "2006-01-02"

// RequestValidator validates request DTOs bound by handlers.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator with the custom rules registered.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Due dates are compared at day granularity, so a date equal to
	// today is still acceptable.
	_ = validate.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok || value == "" {
			return true
		}

		due, err := time.Parse(dueDateLayout, value)
		if err != nil {
			// The datetime rule reports the format error.
			return true
		}

		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		return !due.Before(today)
	})

	return &RequestValidator{validate: validate}
}

// Validate collects every failed rule into a single validation error so the
// client sees all problems at once.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.NewValidationError(strings.Join(messages, ", "))
}

// describe turns a failed rule into a client-facing message.
func describe(fe validator.FieldError) string {
	field := fieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "notpast":
		return fmt.Sprintf("%s must not be in the past", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldName lowercases the first rune so messages match the JSON field names.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}

	return strings.ToLower(name[:1]) + name[1:]
}
