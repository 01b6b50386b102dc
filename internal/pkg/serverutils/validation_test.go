package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Phone string `validate:"required,inmobile"`
}

type pincodeForm struct {
	Pincode string `validate:"required,pincode"`
}

func TestIndianMobileValidation(t *testing.T) {
	valid := []string{
		"9876543210",
		"6000000000",
		"7123456789",
		"8899776655",
		"+91 98765 43210",
		"098765 43210",
		"98765-43210",
	}
	for _, phone := range valid {
		assert.Nil(t, ValidateRequest(phoneForm{Phone: phone}), "expected valid: %s", phone)
	}

	invalid := []string{
		"5876543210",  // leading digit below 6
		"1234567890",  // leading digit below 6
		"987654321",   // 9 digits
		"98765432100", // 11 digits
		"98765abc10",  // strips to 7 digits
		"",            // empty after required
		"+1 98765432", // short after strip
	}
	for _, phone := range invalid {
		assert.NotNil(t, ValidateRequest(phoneForm{Phone: phone}), "expected invalid: %s", phone)
	}
}

func TestPincodeValidation(t *testing.T) {
	valid := []string{"110001", "560034", "999999", "100000"}
	for _, pin := range valid {
		assert.Nil(t, ValidateRequest(pincodeForm{Pincode: pin}), "expected valid: %s", pin)
	}

	invalid := []string{"11000", "1100011", "11000a", "11 001", "abcdef"}
	for _, pin := range invalid {
		assert.NotNil(t, ValidateRequest(pincodeForm{Pincode: pin}), "expected invalid: %s", pin)
	}
}

func TestValidateRequestKeysByField(t *testing.T) {
	fields := ValidateRequest(phoneForm{Phone: "123"})
	require.NotNil(t, fields)
	assert.Contains(t, fields, "Phone")
	assert.Contains(t, fields["Phone"], "inmobile")
}

func TestValidateRequestReportsEveryFailingField(t *testing.T) {
	type signupForm struct {
		FullName string `validate:"required,min=2"`
		Email    string `validate:"required,email"`
		Phone    string `validate:"required,inmobile"`
	}

	fields := ValidateRequest(signupForm{FullName: "x", Email: "not-an-email", Phone: "123"})
	require.NotNil(t, fields)
	assert.Len(t, fields, 3)
	assert.Contains(t, fields["FullName"], "min")
	assert.Contains(t, fields["Email"], "email")
	assert.Contains(t, fields["Phone"], "inmobile")
}
