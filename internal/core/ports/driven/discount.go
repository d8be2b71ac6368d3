package driven

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// DiscountRule is one explicit piece of discount knowledge.
// Rules are independent: each one decides on its own whether it applies.
type DiscountRule interface {
	// Name returns the rule name for logging and breakdowns.
	Name() string

	// Apply returns the discount this rule grants, zero when it does not apply.
	Apply(order domain.Order) decimal.Decimal
}
