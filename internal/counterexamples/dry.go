package counterexamples

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// DiscountFlags drives FlagDiscountCalculator.Apply.
type DiscountFlags struct {
	Percent int64

	// Exactly one of these should be set; nothing enforces it.
	WhenEmployee      bool
	WhenHoliday       bool
	WhenFirstPurchase bool
	MinLoyaltyYears   int
}

// FlagDiscountCalculator folds every discount into one "reusable" function.
//
// Counter-example (DRY overdone): the four discounts look alike, so they
// were merged behind flags. The business rules are now hidden in call-site
// parameters, a change to one rule risks the others, and a zero
// MinLoyaltyYears silently means "always".
type FlagDiscountCalculator struct{}

// Apply returns Percent of the amount when the flagged condition holds.
func (FlagDiscountCalculator) Apply(order domain.Order, f DiscountFlags) decimal.Decimal {
	ok := true
	if f.WhenEmployee && !order.IsEmployee {
		ok = false
	}
	if f.WhenHoliday && !order.IsHoliday {
		ok = false
	}
	if f.WhenFirstPurchase && !order.IsFirstPurchase {
		ok = false
	}
	if order.LoyaltyYears < f.MinLoyaltyYears {
		ok = false
	}
	if !ok {
		return decimal.Zero
	}
	return domain.Percent(order.Amount, f.Percent)
}

// Total applies the four discounts through the shared function.
func (c FlagDiscountCalculator) Total(order domain.Order) decimal.Decimal {
	return c.Apply(order, DiscountFlags{Percent: 30, WhenEmployee: true}).
		Add(c.Apply(order, DiscountFlags{Percent: 20, WhenHoliday: true})).
		Add(c.Apply(order, DiscountFlags{Percent: 15, MinLoyaltyYears: 5})).
		Add(c.Apply(order, DiscountFlags{Percent: 10, WhenFirstPurchase: true}))
}
