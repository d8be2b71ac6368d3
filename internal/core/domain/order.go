package domain

import "github.com/shopspring/decimal"

// Order is a customer order.
//
// The inversion example only reads ID and Amount. The discount rules read
// the flags.
type Order struct {
	// ID identifies the order.
	ID int

	// Amount is the order total before discounts.
	Amount decimal.Decimal

	// IsHoliday marks orders placed during a holiday campaign.
	IsHoliday bool

	// IsFirstPurchase marks the customer's first order.
	IsFirstPurchase bool

	// LoyaltyYears is how long the customer has been with us.
	LoyaltyYears int

	// IsEmployee marks orders placed by staff.
	IsEmployee bool
}
