// Package fees provides the payment fee strategies and a registry that
// builds the configured set of them.
package fees

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Default fractional rates.
var (
	DefaultCreditCardRate = decimal.RequireFromString("0.03")
	DefaultPayPalRate     = decimal.RequireFromString("0.05")
	DefaultPixRate        = decimal.Zero
)

// Ensure the strategies implement the interface.
var (
	_ driven.PaymentFeeStrategy = (*CreditCardFeeStrategy)(nil)
	_ driven.PaymentFeeStrategy = (*PayPalFeeStrategy)(nil)
	_ driven.PaymentFeeStrategy = (*PixFeeStrategy)(nil)
)

// CreditCardFeeStrategy charges a percentage of card payments.
type CreditCardFeeStrategy struct {
	rate decimal.Decimal
}

// NewCreditCardFeeStrategy creates a card strategy with the given rate.
func NewCreditCardFeeStrategy(rate decimal.Decimal) *CreditCardFeeStrategy {
	return &CreditCardFeeStrategy{rate: rate}
}

// Method returns the tag this strategy handles.
func (s *CreditCardFeeStrategy) Method() domain.PaymentMethod {
	return domain.PaymentMethodCreditCard
}

// Calculate returns the card fee.
func (s *CreditCardFeeStrategy) Calculate(p domain.Payment) decimal.Decimal {
	return domain.ApplyRate(p.Amount, s.rate)
}

// PayPalFeeStrategy charges a percentage of PayPal payments.
type PayPalFeeStrategy struct {
	rate decimal.Decimal
}

// NewPayPalFeeStrategy creates a PayPal strategy with the given rate.
func NewPayPalFeeStrategy(rate decimal.Decimal) *PayPalFeeStrategy {
	return &PayPalFeeStrategy{rate: rate}
}

// Method returns the tag this strategy handles.
func (s *PayPalFeeStrategy) Method() domain.PaymentMethod {
	return domain.PaymentMethodPayPal
}

// Calculate returns the PayPal fee.
func (s *PayPalFeeStrategy) Calculate(p domain.Payment) decimal.Decimal {
	return domain.ApplyRate(p.Amount, s.rate)
}

// PixFeeStrategy handles Pix transfers, free by default.
type PixFeeStrategy struct {
	rate decimal.Decimal
}

// NewPixFeeStrategy creates a Pix strategy with the given rate.
func NewPixFeeStrategy(rate decimal.Decimal) *PixFeeStrategy {
	return &PixFeeStrategy{rate: rate}
}

// Method returns the tag this strategy handles.
func (s *PixFeeStrategy) Method() domain.PaymentMethod {
	return domain.PaymentMethodPix
}

// Calculate returns the Pix fee.
func (s *PixFeeStrategy) Calculate(p domain.Payment) decimal.Decimal {
	return domain.ApplyRate(p.Amount, s.rate)
}

// Defaults returns the three strategies at their default rates.
func Defaults() []driven.PaymentFeeStrategy {
	return []driven.PaymentFeeStrategy{
		NewCreditCardFeeStrategy(DefaultCreditCardRate),
		NewPayPalFeeStrategy(DefaultPayPalRate),
		NewPixFeeStrategy(DefaultPixRate),
	}
}
