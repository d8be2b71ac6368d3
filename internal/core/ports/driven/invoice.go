package driven

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// InvoiceValidator checks business rules for an invoice.
// Validate returns a *domain.ValidationError for the first broken rule.
type InvoiceValidator interface {
	Validate(invoice domain.Invoice) error
}

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	Save(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceNotifier tells the customer an invoice was issued.
type InvoiceNotifier interface {
	Notify(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceLister enumerates stored invoices, oldest first.
type InvoiceLister interface {
	List(ctx context.Context) ([]domain.InvoiceRecord, error)
}
