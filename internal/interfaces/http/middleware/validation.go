package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// trackingNumberPattern accepts the carrier formats seen in practice:
// uppercase letters, digits and dashes, 1 to 64 characters
var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9-]{1,64}$`)

// RegisterCustomValidators installs custom validation tags on gin's
// binding validator. Call once during startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("tracking_number", validateTrackingNumber)
}

func validateTrackingNumber(fl validator.FieldLevel) bool {
	return trackingNumberPattern.MatchString(fl.Field().String())
}
