// Package validate wraps the shared validator instance used by entity Bind methods.
package validate

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("phone", phoneDigits)
	})
	return instance
}

// Struct validates a struct against its validate tags.
func Struct(s any) error {
	return get().Struct(s)
}

// phoneDigits accepts any formatting as long as at least 7 digits remain.
func phoneDigits(fl validator.FieldLevel) bool {
	digits := 0
	for _, ch := range fl.Field().String() {
		if ch >= '0' && ch <= '9' {
			digits++
		}
	}
	return digits >= 7
}

// Reason converts a validation error into a short human readable string.
func Reason(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
