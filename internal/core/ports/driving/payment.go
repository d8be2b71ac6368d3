package driving

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// PaymentProcessor computes payment fees.
type PaymentProcessor interface {
	// CalculateFee returns the fee for the payment, or an error wrapping
	// domain.ErrUnsupportedPaymentMethod when no strategy handles its method.
	CalculateFee(payment domain.Payment) (decimal.Decimal, error)

	// Methods returns the payment methods the processor accepts.
	Methods() []domain.PaymentMethod
}
