package serverutils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("inmobile", validateIndianMobile)
	_ = v.RegisterValidation("pincode", validatePincode)
	return v
}

// validateIndianMobile accepts a 10-digit Indian mobile number starting 6-9.
// Separators, spaces, and a +91 / 0 prefix are stripped before checking.
func validateIndianMobile(fl validator.FieldLevel) bool {
	digits := stripNonDigits(fl.Field().String())
	if strings.HasPrefix(digits, "91") && len(digits) == 12 {
		digits = digits[2:]
	}
	if strings.HasPrefix(digits, "0") && len(digits) == 11 {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return false
	}
	return digits[0] >= '6' && digits[0] <= '9'
}

// validatePincode accepts an Indian postal code: exactly 6 digits.
func validatePincode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 6 {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateRequest runs struct validation and returns every failure keyed by
// field name. A nil map means the request is valid.
func ValidateRequest(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string]string, len(errs))
		for _, fe := range errs {
			fields[fe.Field()] = fmt.Sprintf("failed on '%s' rule", fe.Tag())
		}
		return fields
	}
	return map[string]string{"request": err.Error()}
}
