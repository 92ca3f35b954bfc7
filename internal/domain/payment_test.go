package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaymentDetails_Card(t *testing.T) {
	valid := PaymentDetails{
		CardNumber: "1234567890123456",
		ExpiryDate: "12/25",
		CVV:        "123",
		Name:       "A",
	}

	tests := []struct {
		name   string
		mutate func(d *PaymentDetails)
		wantOK bool
	}{
		{"valid card", func(d *PaymentDetails) {}, true},
		{"15 digit number", func(d *PaymentDetails) { d.CardNumber = "123456789012345" }, false},
		{"17 digit number", func(d *PaymentDetails) { d.CardNumber = "12345678901234567" }, false},
		{"letters in number", func(d *PaymentDetails) { d.CardNumber = "12345678901234ab" }, false},
		{"expiry without slash", func(d *PaymentDetails) { d.ExpiryDate = "12345" }, false},
		{"expiry too short", func(d *PaymentDetails) { d.ExpiryDate = "1/25" }, false},
		{"cvv 2 digits", func(d *PaymentDetails) { d.CVV = "12" }, false},
		{"cvv 4 digits", func(d *PaymentDetails) { d.CVV = "1234" }, false},
		{"empty name", func(d *PaymentDetails) { d.Name = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			assert.Equal(t, tt.wantOK, ValidatePaymentDetails(PaymentMethodCard, d))
		})
	}
}

func TestValidatePaymentDetails_UPI(t *testing.T) {
	assert.True(t, ValidatePaymentDetails(PaymentMethodUPI, PaymentDetails{UPIID: "user@bank"}))
	assert.False(t, ValidatePaymentDetails(PaymentMethodUPI, PaymentDetails{UPIID: "userbank"}))
	assert.False(t, ValidatePaymentDetails(PaymentMethodUPI, PaymentDetails{UPIID: ""}))
}

func TestValidatePaymentDetails_UnknownMethod(t *testing.T) {
	assert.False(t, ValidatePaymentDetails("crypto", PaymentDetails{}))
	assert.False(t, ValidatePaymentDetails("", PaymentDetails{}))
}

// Детерминизм: повторный вызов с теми же данными дает тот же результат
func TestValidatePaymentDetails_Deterministic(t *testing.T) {
	d := PaymentDetails{UPIID: "user@bank"}
	first := ValidatePaymentDetails(PaymentMethodUPI, d)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ValidatePaymentDetails(PaymentMethodUPI, d))
	}
}

func TestComputeTotal(t *testing.T) {
	items := []CartItem{
		{Course: Course{Price: 499}},
		{Course: Course{Price: 999}},
		{Course: Course{Price: 0}},
	}
	assert.Equal(t, 1498, ComputeTotal(items))

	// Неподгруженный курс считается за 0
	assert.Equal(t, 499, ComputeTotal([]CartItem{{Course: Course{Price: 499}}, {}}))
	assert.Equal(t, 0, ComputeTotal(nil))
}
