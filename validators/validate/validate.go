// Package validate wraps go-playground/validator for request body
// validation across the route validators.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request payload and returns field to message
// errors suitable for ValidationErrorResponse, or nil when valid.
func Struct(payload interface{}) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			errors[field] = "This field is required!"
		case "email":
			errors[field] = "Must be a valid email address!"
		case "url":
			errors[field] = "Must be a valid URL!"
		case "min":
			errors[field] = "Value is too short or too small!"
		case "max":
			errors[field] = "Value is too long or too large!"
		default:
			errors[field] = "Invalid value!"
		}
	}
	return errors
}
