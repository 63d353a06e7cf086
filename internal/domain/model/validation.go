package model

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequired rejects empty or blank strings.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domainErrors.NewValidationError(field, "is required")
	}
	return nil
}

// ValidateEmail checks that email is present and syntactically valid.
func ValidateEmail(email string) error {
	if err := ValidateRequired("email", email); err != nil {
		return err
	}
	if err := validate.Var(email, "email"); err != nil {
		return domainErrors.NewValidationError("email", "is not a valid email address")
	}
	return nil
}

// ValidatePositiveInt rejects zero and negative values.
func ValidatePositiveInt(field string, value int) error {
	if value <= 0 {
		return domainErrors.NewValidationError(field, "must be greater than zero")
	}
	return nil
}

// ValidatePositiveFloat rejects zero, negative and non-finite values.
func ValidatePositiveFloat(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return domainErrors.NewValidationError(field, "must be greater than zero")
	}
	return nil
}
