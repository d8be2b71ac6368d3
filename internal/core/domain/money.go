package domain

import "github.com/shopspring/decimal"

// Percent returns pct percent of amount.
func Percent(amount decimal.Decimal, pct int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
}

// ApplyRate returns amount multiplied by a fractional rate (0.05 for 5%).
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}
