package driving

import (
	"context"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// InvoiceService issues invoices.
type InvoiceService interface {
	// CreateInvoice validates, persists and notifies, in that order.
	// A validation failure stops before anything is saved.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceHistory lists stored invoices, oldest first.
type InvoiceHistory interface {
	ListInvoices(ctx context.Context) ([]domain.InvoiceRecord, error)
}
