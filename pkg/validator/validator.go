package validator

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Get returns the shared validator with the platform's custom rules
// registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("hex_color", validateHexColor)
	})

	return validate
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorPattern.MatchString(fl.Field().String())
}
