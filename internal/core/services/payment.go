package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
	"github.com/custodia-labs/solidkit/internal/logger"
)

// Ensure PaymentProcessor implements the interface.
var _ driving.PaymentProcessor = (*PaymentProcessor)(nil)

// PaymentProcessor dispatches fee calculation to the strategy registered
// for the payment's method. New methods are supported by passing another
// strategy to the constructor; this type does not change.
type PaymentProcessor struct {
	strategies map[domain.PaymentMethod]driven.PaymentFeeStrategy
	log        logger.Logger
}

// NewPaymentProcessor indexes the strategies by method.
// Two strategies for the same method is a configuration error.
func NewPaymentProcessor(strategies ...driven.PaymentFeeStrategy) (*PaymentProcessor, error) {
	index := make(map[domain.PaymentMethod]driven.PaymentFeeStrategy, len(strategies))
	for _, strategy := range strategies {
		method := strategy.Method()
		if _, exists := index[method]; exists {
			return nil, fmt.Errorf("fee strategy for %s: %w", method, domain.ErrAlreadyExists)
		}
		index[method] = strategy
	}

	return &PaymentProcessor{
		strategies: index,
		log:        logger.With("payment"),
	}, nil
}

// CalculateFee returns the fee computed by the method's strategy.
func (p *PaymentProcessor) CalculateFee(payment domain.Payment) (decimal.Decimal, error) {
	strategy, ok := p.strategies[payment.Method]
	if !ok {
		p.log.Warn("no fee strategy for %q", payment.Method)
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, payment.Method)
	}

	fee := strategy.Calculate(payment)
	p.log.Debug("%s fee on %s is %s", payment.Method, payment.Amount, fee)
	return fee, nil
}

// Methods returns the accepted payment methods sorted by name.
func (p *PaymentProcessor) Methods() []domain.PaymentMethod {
	methods := make([]domain.PaymentMethod, 0, len(p.strategies))
	for method := range p.strategies {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	return methods
}
