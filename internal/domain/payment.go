package domain

// PaymentDetails — реквизиты из платежной формы. Для card и upi заполняются разные поля.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	Name       string `json:"name"`
	UPIID      string `json:"upiId"`
}

// ValidatePaymentDetails — чистая проверка формы реквизитов перед чекаутом.
// Никаких запросов наружу: карта — 16 цифр, MM/YY, 3 цифры CVV и имя;
// UPI — идентификатор с "@". Любой другой метод невалиден.
func ValidatePaymentDetails(method string, details PaymentDetails) bool {
	switch method {
	case PaymentMethodCard:
		return allDigits(details.CardNumber) && len(details.CardNumber) == 16 &&
			isExpiryShaped(details.ExpiryDate) &&
			allDigits(details.CVV) && len(details.CVV) == 3 &&
			details.Name != ""
	case PaymentMethodUPI:
		return containsAt(details.UPIID)
	default:
		return false
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// "MM/YY": две цифры, слэш, две цифры
func isExpiryShaped(s string) bool {
	if len(s) != 5 || s[2] != '/' {
		return false
	}
	return allDigits(s[:2]) && allDigits(s[3:])
}

func containsAt(s string) bool {
	for _, r := range s {
		if r == '@' {
			return true
		}
	}
	return false
}
