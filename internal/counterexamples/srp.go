package counterexamples

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// InvoiceProcessor validates, persists, emails and logs in one type.
//
// Counter-example (SRP): business rules, persistence, delivery and logging
// all change for different reasons, yet every such change edits this type.
// None of the steps can be replaced or tested on its own.
type InvoiceProcessor struct {
	out io.Writer
}

// NewInvoiceProcessor creates the processor writing to out.
func NewInvoiceProcessor(out io.Writer) *InvoiceProcessor {
	return &InvoiceProcessor{out: out}
}

// CreateInvoice runs every concern inline.
func (p *InvoiceProcessor) CreateInvoice(invoice domain.Invoice) error {
	if err := p.validate(invoice); err != nil {
		return err
	}
	p.saveToDatabase(invoice)
	p.sendEmail(invoice)
	p.log(invoice)
	return nil
}

func (p *InvoiceProcessor) validate(invoice domain.Invoice) error {
	if !invoice.Total.IsPositive() {
		return domain.NewValidationError("total", "invoice total must be greater than zero")
	}
	if strings.TrimSpace(invoice.CustomerEmail) == "" {
		return domain.NewValidationError("customer_email", "customer email is required")
	}
	return nil
}

func (p *InvoiceProcessor) saveToDatabase(domain.Invoice) {
	fmt.Fprintln(p.out, "Saving invoice to database")
}

func (p *InvoiceProcessor) sendEmail(invoice domain.Invoice) {
	fmt.Fprintf(p.out, "Sending invoice email to %s\n", invoice.CustomerEmail)
}

func (p *InvoiceProcessor) log(domain.Invoice) {
	fmt.Fprintln(p.out, "Invoice created successfully")
}
