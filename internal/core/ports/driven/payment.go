package driven

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// PaymentFeeStrategy computes the fee for one payment method.
// Adding a payment method means adding a strategy, never editing an
// existing one.
type PaymentFeeStrategy interface {
	// Method returns the payment method this strategy handles.
	Method() domain.PaymentMethod

	// Calculate returns the fee for the payment.
	Calculate(payment domain.Payment) decimal.Decimal
}
