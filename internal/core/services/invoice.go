package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
	"github.com/custodia-labs/solidkit/internal/logger"
)

// Ensure the invoice types implement their interfaces.
var (
	_ driving.InvoiceService  = (*InvoiceService)(nil)
	_ driven.InvoiceValidator = (*InvoiceValidator)(nil)
)

// InvoiceValidator enforces the invoice business rules.
type InvoiceValidator struct{}

// NewInvoiceValidator creates a new invoice validator.
func NewInvoiceValidator() *InvoiceValidator {
	return &InvoiceValidator{}
}

// Validate requires a positive total and a non-blank customer email.
func (v *InvoiceValidator) Validate(invoice domain.Invoice) error {
	if !invoice.Total.IsPositive() {
		return domain.NewValidationError("total", "invoice total must be greater than zero")
	}
	if strings.TrimSpace(invoice.CustomerEmail) == "" {
		return domain.NewValidationError("customer_email", "customer email is required")
	}
	return nil
}

// InvoiceService creates invoices by composing a validator, a repository
// and a notifier. Each collaborator has one reason to change.
type InvoiceService struct {
	validator  driven.InvoiceValidator
	repository driven.InvoiceRepository
	notifier   driven.InvoiceNotifier
	log        logger.Logger
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	validator driven.InvoiceValidator,
	repository driven.InvoiceRepository,
	notifier driven.InvoiceNotifier,
) *InvoiceService {
	return &InvoiceService{
		validator:  validator,
		repository: repository,
		notifier:   notifier,
		log:        logger.With("invoice"),
	}
}

// CreateInvoice validates, saves and then notifies.
func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice domain.Invoice) error {
	s.log.Debug("validating invoice for %q", invoice.CustomerEmail)
	if err := s.validator.Validate(invoice); err != nil {
		return fmt.Errorf("validate invoice: %w", err)
	}

	s.log.Debug("saving invoice (total %s)", invoice.Total)
	if err := s.repository.Save(ctx, invoice); err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}

	s.log.Debug("notifying %s", invoice.CustomerEmail)
	if err := s.notifier.Notify(ctx, invoice); err != nil {
		return fmt.Errorf("notify customer: %w", err)
	}
	return nil
}

// Ensure InvoiceHistory implements the interface.
var _ driving.InvoiceHistory = (*InvoiceHistory)(nil)

// InvoiceHistory lists issued invoices.
type InvoiceHistory struct {
	lister driven.InvoiceLister
}

// NewInvoiceHistory creates a new invoice history.
func NewInvoiceHistory(lister driven.InvoiceLister) *InvoiceHistory {
	return &InvoiceHistory{lister: lister}
}

// ListInvoices returns every stored invoice.
func (h *InvoiceHistory) ListInvoices(ctx context.Context) ([]domain.InvoiceRecord, error) {
	records, err := h.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return records, nil
}
