package checkout

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kitabdunyasi/models"
	"kitabdunyasi/utils"
)

// ValidationError flags a correctable form field. The settlement draft
// survives it, so the caller can fix the field and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: %s: %s", e.Field, e.Message)
}

// CardInput holds the raw card form fields.
type CardInput struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

func validateBilling(b models.BillingInfo) error {
	if strings.TrimSpace(b.Name) == "" {
		return &ValidationError{Field: "name", Message: "Ad tələb olunur"}
	}
	if !utils.ValidEmail(b.Email) {
		return &ValidationError{Field: "email", Message: "E-poçt düzgün deyil"}
	}
	if strings.TrimSpace(b.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "Telefon tələb olunur"}
	}
	if strings.TrimSpace(b.City) == "" {
		return &ValidationError{Field: "city", Message: "Şəhər tələb olunur"}
	}
	if strings.TrimSpace(b.Address) == "" {
		return &ValidationError{Field: "address", Message: "Ünvan tələb olunur"}
	}
	return nil
}

func validatePayment(method string, card CardInput) error {
	switch method {
	case PaymentCash:
		return nil
	case PaymentCard:
		return validateCard(card)
	default:
		return &ValidationError{Field: "paymentMethod", Message: "Ödəniş üsulu seçilməyib"}
	}
}

// validateCard checks the number, expiry and CVV of the card form. The
// expiry is MM/YY and must not be in the past.
func validateCard(card CardInput) error {
	digits := strings.ReplaceAll(card.Number, " ", "")
	if len(digits) != 16 || !allDigits(digits) {
		return &ValidationError{Field: "cardNumber", Message: "Kart nömrəsi 16 rəqəm olmalıdır"}
	}

	parts := strings.Split(strings.ReplaceAll(card.Expiry, "-", "/"), "/")
	if len(parts) != 2 {
		return &ValidationError{Field: "cardExpiry", Message: "Son istifadə tarixi MM/YY formatında olmalıdır"}
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return &ValidationError{Field: "cardExpiry", Message: "Ay düzgün deyil"}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return &ValidationError{Field: "cardExpiry", Message: "İl düzgün deyil"}
	}
	year += 2000

	now := time.Now()
	if year < now.Year() || (year == now.Year() && time.Month(month) < now.Month()) {
		return &ValidationError{Field: "cardExpiry", Message: "Kartın vaxtı keçib"}
	}

	if len(card.CVV) != 3 || !allDigits(card.CVV) {
		return &ValidationError{Field: "cardCVV", Message: "CVV 3 rəqəm olmalıdır"}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
