// Package console provides simulated stores that only announce what they
// would persist. It is the default storage backend.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Email returned for every simulated user lookup.
const simulatedEmail = "user@email.com"

// Ensure the stores implement their interfaces.
var (
	_ driven.OrderRepository   = (*OrderRepository)(nil)
	_ driven.OrderLister       = (*OrderRepository)(nil)
	_ driven.InvoiceRepository = (*InvoiceRepository)(nil)
	_ driven.InvoiceLister     = (*InvoiceRepository)(nil)
	_ driven.UserReader        = (*UserStore)(nil)
	_ driven.UserWriter        = (*UserStore)(nil)
	_ driven.UserLister        = (*UserStore)(nil)
)

// OrderRepository pretends to write orders to SQL Server.
type OrderRepository struct {
	out io.Writer
}

// NewOrderRepository creates an order repository writing to out.
func NewOrderRepository(out io.Writer) *OrderRepository {
	return &OrderRepository{out: out}
}

// Save announces the order.
func (r *OrderRepository) Save(ctx context.Context, _ domain.Order) error {
	return say(ctx, r.out, "Saving order to SQL Server")
}

// List returns no orders; nothing is kept.
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return nil, ctx.Err()
}

// InvoiceRepository pretends to write invoices to a database.
type InvoiceRepository struct {
	out io.Writer
}

// NewInvoiceRepository creates an invoice repository writing to out.
func NewInvoiceRepository(out io.Writer) *InvoiceRepository {
	return &InvoiceRepository{out: out}
}

// Save announces the invoice.
func (r *InvoiceRepository) Save(ctx context.Context, _ domain.Invoice) error {
	return say(ctx, r.out, "Saving invoice to database")
}

// List returns no invoices; nothing is kept.
func (r *InvoiceRepository) List(ctx context.Context) ([]domain.InvoiceRecord, error) {
	return nil, ctx.Err()
}

// UserStore answers every lookup with a placeholder user and announces
// writes without keeping them.
type UserStore struct {
	out io.Writer
}

// NewUserStore creates a user store writing to out.
func NewUserStore(out io.Writer) *UserStore {
	return &UserStore{out: out}
}

// GetByID returns a placeholder user with the requested id.
func (s *UserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Email: simulatedEmail}, nil
}

// Create announces the new user.
func (s *UserStore) Create(ctx context.Context, user domain.User) error {
	return say(ctx, s.out, fmt.Sprintf("Creating user %d", user.ID))
}

// Update announces the change.
func (s *UserStore) Update(ctx context.Context, user domain.User) error {
	return say(ctx, s.out, fmt.Sprintf("Updating user %d", user.ID))
}

// Delete announces the removal.
func (s *UserStore) Delete(ctx context.Context, id int) error {
	return say(ctx, s.out, fmt.Sprintf("Deleting user %d", id))
}

// List returns no users; nothing is kept.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	return nil, ctx.Err()
}

func say(ctx context.Context, out io.Writer, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("write %q: %w", line, err)
	}
	return nil
}
