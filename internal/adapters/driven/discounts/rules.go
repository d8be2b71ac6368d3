// Package discounts holds the independent discount rules.
//
// Each rule is a separate type even though the arithmetic looks alike.
// The rules change for different business reasons, so they are kept
// apart instead of being folded into one parameterised function.
package discounts

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Loyalty threshold in years.
const loyaltyMinYears = 5

// Ensure the rules implement the interface.
var (
	_ driven.DiscountRule = EmployeeDiscountRule{}
	_ driven.DiscountRule = PremiumHolidayDiscountRule{}
	_ driven.DiscountRule = LoyaltyDiscountRule{}
	_ driven.DiscountRule = FirstPurchaseDiscountRule{}
)

// EmployeeDiscountRule gives staff 30% off.
type EmployeeDiscountRule struct{}

// Name identifies the rule.
func (EmployeeDiscountRule) Name() string { return "employee" }

// Apply returns 30% of the amount for employees.
func (EmployeeDiscountRule) Apply(o domain.Order) decimal.Decimal {
	if !o.IsEmployee {
		return decimal.Zero
	}
	return domain.Percent(o.Amount, 30)
}

// PremiumHolidayDiscountRule gives 20% off on holidays.
type PremiumHolidayDiscountRule struct{}

// Name identifies the rule.
func (PremiumHolidayDiscountRule) Name() string { return "premium_holiday" }

// Apply returns 20% of the amount on holidays.
func (PremiumHolidayDiscountRule) Apply(o domain.Order) decimal.Decimal {
	if !o.IsHoliday {
		return decimal.Zero
	}
	return domain.Percent(o.Amount, 20)
}

// LoyaltyDiscountRule rewards long-standing customers.
type LoyaltyDiscountRule struct{}

// Name identifies the rule.
func (LoyaltyDiscountRule) Name() string { return "loyalty" }

// Apply returns 15% of the amount after five years.
func (LoyaltyDiscountRule) Apply(o domain.Order) decimal.Decimal {
	if o.LoyaltyYears < loyaltyMinYears {
		return decimal.Zero
	}
	return domain.Percent(o.Amount, 15)
}

// FirstPurchaseDiscountRule welcomes new customers.
type FirstPurchaseDiscountRule struct{}

// Name identifies the rule.
func (FirstPurchaseDiscountRule) Name() string { return "first_purchase" }

// Apply returns 10% of the amount on a first purchase.
func (FirstPurchaseDiscountRule) Apply(o domain.Order) decimal.Decimal {
	if !o.IsFirstPurchase {
		return decimal.Zero
	}
	return domain.Percent(o.Amount, 10)
}

// Defaults returns all four rules.
func Defaults() []driven.DiscountRule {
	return []driven.DiscountRule{
		EmployeeDiscountRule{},
		PremiumHolidayDiscountRule{},
		LoyaltyDiscountRule{},
		FirstPurchaseDiscountRule{},
	}
}
