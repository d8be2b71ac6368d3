package fees

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// BuilderFunc creates a fee strategy for a configured rate.
type BuilderFunc func(rate decimal.Decimal) driven.PaymentFeeStrategy

// Registry maps payment method tags to strategy builders.
// It allows the strategy set to be assembled from configuration.
type Registry struct {
	builders map[domain.PaymentMethod]BuilderFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[domain.PaymentMethod]BuilderFunc),
	}
}

// NewDefaultRegistry creates a registry with every built-in strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// RegisterDefaults registers the card, PayPal and Pix builders.
func RegisterDefaults(r *Registry) {
	r.Register(domain.PaymentMethodCreditCard, func(rate decimal.Decimal) driven.PaymentFeeStrategy {
		return NewCreditCardFeeStrategy(rate)
	})
	r.Register(domain.PaymentMethodPayPal, func(rate decimal.Decimal) driven.PaymentFeeStrategy {
		return NewPayPalFeeStrategy(rate)
	})
	r.Register(domain.PaymentMethodPix, func(rate decimal.Decimal) driven.PaymentFeeStrategy {
		return NewPixFeeStrategy(rate)
	})
}

// Register adds a builder. A later registration for the same method
// replaces the earlier one.
func (r *Registry) Register(method domain.PaymentMethod, builder BuilderFunc) {
	r.builders[method] = builder
}

// Build creates the strategy for a method.
// Returns ErrUnsupportedPaymentMethod if nothing is registered for it.
func (r *Registry) Build(method domain.PaymentMethod, rate decimal.Decimal) (driven.PaymentFeeStrategy, error) {
	builder, ok := r.builders[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, method)
	}
	return builder(rate), nil
}

// BuildEnabled creates one strategy per enabled method using the
// configured rates.
func (r *Registry) BuildEnabled(settings domain.FeeSettings) ([]driven.PaymentFeeStrategy, error) {
	strategies := make([]driven.PaymentFeeStrategy, 0, len(settings.Enabled))
	for _, method := range settings.Enabled {
		rate, err := settings.Rate(method)
		if err != nil {
			return nil, err
		}
		strategy, err := r.Build(method, rate)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}
	return strategies, nil
}

// Has returns true if a builder is registered for the method.
func (r *Registry) Has(method domain.PaymentMethod) bool {
	_, ok := r.builders[method]
	return ok
}

// Methods returns every registered method, sorted.
func (r *Registry) Methods() []domain.PaymentMethod {
	methods := make([]domain.PaymentMethod, 0, len(r.builders))
	for method := range r.builders {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	return methods
}
