package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// InvoiceStore persists invoices in the invoices table under generated
// UUIDs.
type InvoiceStore struct {
	db  *sql.DB
	now func() time.Time
}

func newInvoiceStore(db *sql.DB) *InvoiceStore {
	return &InvoiceStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Save inserts the invoice.
func (s *InvoiceStore) Save(ctx context.Context, invoice domain.Invoice) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invoices (id, total, customer_email, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), invoice.Total.String(), invoice.CustomerEmail, s.now())
	if err != nil {
		return fmt.Errorf("saving invoice: %w", err)
	}
	return nil
}

// List returns all invoices, oldest first.
func (s *InvoiceStore) List(ctx context.Context) ([]domain.InvoiceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, total, customer_email, created_at
		FROM invoices ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var records []domain.InvoiceRecord
	for rows.Next() {
		var r domain.InvoiceRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&r.ID, &r.Invoice.Total, &r.Invoice.CustomerEmail, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}
		if createdAt.Valid {
			r.CreatedAt = createdAt.Time
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
