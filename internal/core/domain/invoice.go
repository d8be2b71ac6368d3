package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a bill sent to a customer.
type Invoice struct {
	Total         decimal.Decimal
	CustomerEmail string
}

// InvoiceRecord is an invoice as kept by a store.
// Invoices carry no natural key, so stores assign ID on save.
type InvoiceRecord struct {
	ID        string
	Invoice   Invoice
	CreatedAt time.Time
}
