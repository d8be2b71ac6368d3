package counterexamples

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	creditCardRate = decimal.RequireFromString("0.03")
	payPalRate     = decimal.RequireFromString("0.05")
)

// BranchingPaymentProcessor computes fees with an if-chain on the method.
//
// Counter-example (OCP): a new payment method means editing this function,
// and every edit risks the branches that already work.
type BranchingPaymentProcessor struct{}

// CalculateFee returns the fee for the payment.
func (BranchingPaymentProcessor) CalculateFee(payment domain.Payment) (decimal.Decimal, error) {
	if payment.Method == domain.PaymentMethodCreditCard {
		return payment.Amount.Mul(creditCardRate), nil
	}
	if payment.Method == domain.PaymentMethodPayPal {
		return payment.Amount.Mul(payPalRate), nil
	}
	if payment.Method == domain.PaymentMethodPix {
		return decimal.Zero, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, payment.Method)
}
