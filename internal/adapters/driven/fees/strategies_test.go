package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

func TestStrategies_DefaultRates(t *testing.T) {
	amount := decimal.NewFromInt(200)

	tests := []struct {
		name     string
		strategy driven.PaymentFeeStrategy
		method   domain.PaymentMethod
		want     string
	}{
		{"credit card", NewCreditCardFeeStrategy(DefaultCreditCardRate), domain.PaymentMethodCreditCard, "6"},
		{"paypal", NewPayPalFeeStrategy(DefaultPayPalRate), domain.PaymentMethodPayPal, "10"},
		{"pix", NewPixFeeStrategy(DefaultPixRate), domain.PaymentMethodPix, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.method, tt.strategy.Method())

			fee := tt.strategy.Calculate(domain.Payment{Method: tt.method, Amount: amount})
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.want)), "got %s", fee)
		})
	}
}

func TestStrategies_CustomRate(t *testing.T) {
	s := NewPixFeeStrategy(decimal.RequireFromString("0.01"))

	fee := s.Calculate(domain.Payment{Method: domain.PaymentMethodPix, Amount: decimal.RequireFromString("150.00")})

	assert.True(t, fee.Equal(decimal.RequireFromString("1.5")), "got %s", fee)
}

func TestDefaults(t *testing.T) {
	strategies := Defaults()

	methods := make([]domain.PaymentMethod, 0, len(strategies))
	for _, s := range strategies {
		methods = append(methods, s.Method())
	}
	assert.ElementsMatch(t, domain.AllPaymentMethods(), methods)
}
