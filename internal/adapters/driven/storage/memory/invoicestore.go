package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

// Ensure InvoiceStore implements the interfaces.
var (
	_ driven.InvoiceRepository = (*InvoiceStore)(nil)
	_ driven.InvoiceLister     = (*InvoiceStore)(nil)
)

// InvoiceStore is an in-memory implementation of driven.InvoiceRepository.
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices []domain.InvoiceRecord
	now      func() time.Time
}

// NewInvoiceStore creates a new in-memory invoice store.
func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{now: time.Now}
}

// Save appends the invoice under a fresh UUID.
func (s *InvoiceStore) Save(_ context.Context, invoice domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, domain.InvoiceRecord{
		ID:        uuid.New().String(),
		Invoice:   invoice,
		CreatedAt: s.now(),
	})
	return nil
}

// List returns all invoices in insertion order.
func (s *InvoiceStore) List(_ context.Context) ([]domain.InvoiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.InvoiceRecord, len(s.invoices))
	copy(result, s.invoices)
	return result, nil
}
