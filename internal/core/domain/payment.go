package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment is made.
type PaymentMethod string

// Available payment methods.
const (
	// PaymentMethodCreditCard is a card payment.
	PaymentMethodCreditCard PaymentMethod = "credit_card"

	// PaymentMethodPayPal is a PayPal wallet payment.
	PaymentMethodPayPal PaymentMethod = "paypal"

	// PaymentMethodPix is an instant Pix bank transfer.
	PaymentMethodPix PaymentMethod = "pix"
)

// IsValid returns true if the payment method is recognised.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodPix:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m PaymentMethod) String() string {
	return string(m)
}

// Description returns a human-readable name of the method.
func (m PaymentMethod) Description() string {
	switch m {
	case PaymentMethodCreditCard:
		return "Credit Card"
	case PaymentMethodPayPal:
		return "PayPal"
	case PaymentMethodPix:
		return "Pix"
	default:
		return unknownDescription
	}
}

// ParsePaymentMethod converts user input into a PaymentMethod.
// Matching ignores case and accepts "-" in place of "_".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, s)
	}
	return m, nil
}

// AllPaymentMethods returns every known payment method.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCreditCard,
		PaymentMethodPayPal,
		PaymentMethodPix,
	}
}

// Payment is a single charge.
type Payment struct {
	Method PaymentMethod
	Amount decimal.Decimal
}
