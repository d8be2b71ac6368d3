package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// mockCatalog is a mock implementation of driving.ExampleCatalog.
type mockCatalog struct {
	examples []domain.Example
	output   string
	err      error
}

func (m *mockCatalog) List(filter domain.ExampleFilter) []domain.Example {
	var out []domain.Example
	for _, e := range m.examples {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m *mockCatalog) Get(id string) (*domain.Example, error) {
	for i := range m.examples {
		if m.examples[i].ID == id {
			e := m.examples[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("example %q: %w", id, domain.ErrNotFound)
}

func (m *mockCatalog) Run(_ context.Context, _ string, w io.Writer) error {
	if _, err := io.WriteString(w, m.output); err != nil {
		return err
	}
	return m.err
}

// mockPayments is a mock implementation of driving.PaymentProcessor.
type mockPayments struct {
	fee     decimal.Decimal
	err     error
	payment domain.Payment
}

func (m *mockPayments) CalculateFee(payment domain.Payment) (decimal.Decimal, error) {
	m.payment = payment
	return m.fee, m.err
}

func (m *mockPayments) Methods() []domain.PaymentMethod {
	return domain.AllPaymentMethods()
}

// mockDiscounts is a mock implementation of driving.DiscountService.
type mockDiscounts struct {
	lines []driving.DiscountLine
	order domain.Order
}

func (m *mockDiscounts) CalculateDiscount(order domain.Order) decimal.Decimal {
	m.order = order
	total := decimal.Zero
	for _, l := range m.lines {
		total = total.Add(l.Amount)
	}
	return total
}

func (m *mockDiscounts) Breakdown(order domain.Order) []driving.DiscountLine {
	m.order = order
	return m.lines
}

func sampleExamples() []domain.Example {
	return []domain.Example{
		{
			ID: "dip/good", Principle: domain.PrincipleDependencyInversion, Variant: domain.VariantGood,
			Title: "Injected repository", Summary: "The service depends on an abstraction.",
			Notes: []string{"Storage can be swapped"},
		},
		{
			ID: "dip/bad", Principle: domain.PrincipleDependencyInversion, Variant: domain.VariantBad,
			Title: "Hard-wired database", Summary: "The service builds its own database.",
		},
	}
}
