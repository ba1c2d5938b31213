package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GetValidator returns the shared validator instance. gin keeps its own
// binding validator; this one serves explicit struct checks such as
// configuration validation.
func GetValidator() *validator.Validate {
	return validate
}
