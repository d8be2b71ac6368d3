package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// --- Mock implementations ---

// callLog records the order in which collaborators are called.
type callLog struct {
	calls []string
}

func (l *callLog) record(name string) {
	l.calls = append(l.calls, name)
}

// mockOrderRepository implements driven.OrderRepository for testing.
type mockOrderRepository struct {
	saved   []domain.Order
	saveErr error
}

func (m *mockOrderRepository) Save(_ context.Context, order domain.Order) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, order)
	return nil
}

// mockInvoiceValidator implements driven.InvoiceValidator for testing.
type mockInvoiceValidator struct {
	log *callLog
	err error
}

func (m *mockInvoiceValidator) Validate(_ domain.Invoice) error {
	m.log.record("validate")
	return m.err
}

// mockInvoiceRepository implements driven.InvoiceRepository for testing.
type mockInvoiceRepository struct {
	log   *callLog
	saved []domain.Invoice
	err   error
}

func (m *mockInvoiceRepository) Save(_ context.Context, invoice domain.Invoice) error {
	m.log.record("save")
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, invoice)
	return nil
}

// mockInvoiceNotifier implements driven.InvoiceNotifier for testing.
type mockInvoiceNotifier struct {
	log      *callLog
	notified []domain.Invoice
	err      error
}

func (m *mockInvoiceNotifier) Notify(_ context.Context, invoice domain.Invoice) error {
	m.log.record("notify")
	if m.err != nil {
		return m.err
	}
	m.notified = append(m.notified, invoice)
	return nil
}

// stubFeeStrategy implements driven.PaymentFeeStrategy with a fixed rate.
type stubFeeStrategy struct {
	method domain.PaymentMethod
	rate   decimal.Decimal
}

func (s stubFeeStrategy) Method() domain.PaymentMethod { return s.method }

func (s stubFeeStrategy) Calculate(p domain.Payment) decimal.Decimal {
	return p.Amount.Mul(s.rate)
}

// stubDiscountRule implements driven.DiscountRule returning a fixed amount
// when its predicate holds.
type stubDiscountRule struct {
	name  string
	when  func(domain.Order) bool
	value decimal.Decimal
}

func (r stubDiscountRule) Name() string { return r.name }

func (r stubDiscountRule) Apply(o domain.Order) decimal.Decimal {
	if r.when != nil && !r.when(o) {
		return decimal.Zero
	}
	return r.value
}

// mockUserReader implements driven.UserReader for testing.
type mockUserReader struct {
	users map[int]domain.User
}

func (m *mockUserReader) GetByID(_ context.Context, id int) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &user, nil
}

// spyBird implements driven.Bird and driven.FlyingBird.
type spyBird struct {
	moves int
	flies int
}

func (b *spyBird) Name() string { return "spy" }
func (b *spyBird) Move()        { b.moves++ }
func (b *spyBird) Fly()         { b.flies++ }

// Compile-time checks for the mocks.
var (
	_ driven.OrderRepository    = (*mockOrderRepository)(nil)
	_ driven.InvoiceValidator   = (*mockInvoiceValidator)(nil)
	_ driven.InvoiceRepository  = (*mockInvoiceRepository)(nil)
	_ driven.InvoiceNotifier    = (*mockInvoiceNotifier)(nil)
	_ driven.PaymentFeeStrategy = stubFeeStrategy{}
	_ driven.DiscountRule       = stubDiscountRule{}
	_ driven.UserReader         = (*mockUserReader)(nil)
	_ driven.FlyingBird         = (*spyBird)(nil)
)
