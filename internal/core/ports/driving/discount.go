package driving

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// DiscountLine is one rule's contribution to a discount.
type DiscountLine struct {
	Rule   string
	Amount decimal.Decimal
}

// DiscountService computes order discounts.
type DiscountService interface {
	// CalculateDiscount returns the sum of every rule's discount.
	CalculateDiscount(order domain.Order) decimal.Decimal

	// Breakdown returns each rule's contribution in rule order.
	Breakdown(order domain.Order) []DiscountLine
}
