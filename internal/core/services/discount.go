package services

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
	"github.com/custodia-labs/solidkit/internal/logger"
)

// Ensure DiscountService implements the interface.
var _ driving.DiscountService = (*DiscountService)(nil)

// DiscountService adds up independent discount rules.
// Each rule stays explicit; the service only sums them.
type DiscountService struct {
	rules []driven.DiscountRule
	log   logger.Logger
}

// NewDiscountService creates a discount service over the given rules.
func NewDiscountService(rules ...driven.DiscountRule) *DiscountService {
	return &DiscountService{
		rules: rules,
		log:   logger.With("discount"),
	}
}

// CalculateDiscount returns the sum of every rule's discount.
func (s *DiscountService) CalculateDiscount(order domain.Order) decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Breakdown(order) {
		total = total.Add(line.Amount)
	}
	return total
}

// Breakdown returns each rule's contribution in rule order.
func (s *DiscountService) Breakdown(order domain.Order) []driving.DiscountLine {
	lines := make([]driving.DiscountLine, 0, len(s.rules))
	for _, rule := range s.rules {
		amount := rule.Apply(order)
		s.log.Debug("%s contributes %s", rule.Name(), amount)
		lines = append(lines, driving.DiscountLine{Rule: rule.Name(), Amount: amount})
	}
	return lines
}
