package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/adapters/driven/notify"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestInvoiceValidator_Validate(t *testing.T) {
	validator := NewInvoiceValidator()

	tests := []struct {
		name    string
		invoice domain.Invoice
		field   string
	}{
		{"valid", domain.Invoice{Total: decimal.NewFromInt(100), CustomerEmail: "a@b.com"}, ""},
		{"zero total", domain.Invoice{Total: decimal.Zero, CustomerEmail: "a@b.com"}, "total"},
		{"negative total", domain.Invoice{Total: decimal.NewFromInt(-5), CustomerEmail: "a@b.com"}, "total"},
		{"empty email", domain.Invoice{Total: decimal.NewFromInt(10)}, "customer_email"},
		{"blank email", domain.Invoice{Total: decimal.NewFromInt(10), CustomerEmail: "   "}, "customer_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.invoice)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.NotErrorIs(t, err, domain.ErrUnsupportedBehaviour)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func newInvoiceFixture(validateErr, saveErr, notifyErr error) (*InvoiceService, *callLog, *mockInvoiceRepository, *mockInvoiceNotifier) {
	log := &callLog{}
	repo := &mockInvoiceRepository{log: log, err: saveErr}
	notifier := &mockInvoiceNotifier{log: log, err: notifyErr}
	service := NewInvoiceService(&mockInvoiceValidator{log: log, err: validateErr}, repo, notifier)
	return service, log, repo, notifier
}

func TestInvoiceService_CreateInvoice_SavesThenNotifies(t *testing.T) {
	service, log, repo, notifier := newInvoiceFixture(nil, nil, nil)
	invoice := domain.Invoice{Total: decimal.NewFromInt(100), CustomerEmail: "a@b.com"}

	err := service.CreateInvoice(context.Background(), invoice)

	require.NoError(t, err)
	assert.Equal(t, []string{"validate", "save", "notify"}, log.calls)
	assert.Len(t, repo.saved, 1)
	assert.Len(t, notifier.notified, 1)
	assert.Equal(t, "a@b.com", notifier.notified[0].CustomerEmail)
}

func TestInvoiceService_CreateInvoice_ValidationStopsSideEffects(t *testing.T) {
	// Real validator, so the failure comes from the business rules.
	log := &callLog{}
	repo := &mockInvoiceRepository{log: log}
	notifier := &mockInvoiceNotifier{log: log}
	service := NewInvoiceService(NewInvoiceValidator(), repo, notifier)

	tests := []struct {
		name    string
		invoice domain.Invoice
	}{
		{"zero total", domain.Invoice{Total: decimal.Zero, CustomerEmail: "a@b.com"}},
		{"blank email", domain.Invoice{Total: decimal.NewFromInt(100), CustomerEmail: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateInvoice(context.Background(), tt.invoice)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, log.calls)
			assert.Empty(t, repo.saved)
			assert.Empty(t, notifier.notified)
		})
	}
}

func TestInvoiceService_CreateInvoice_SaveErrorSkipsNotify(t *testing.T) {
	boom := errors.New("connection refused")
	service, log, _, notifier := newInvoiceFixture(nil, boom, nil)

	err := service.CreateInvoice(context.Background(), domain.Invoice{Total: decimal.NewFromInt(1), CustomerEmail: "x@y.z"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"validate", "save"}, log.calls)
	assert.Empty(t, notifier.notified)
}

func TestInvoiceService_CreateInvoice_NotifyError(t *testing.T) {
	boom := errors.New("smtp down")
	service, log, repo, _ := newInvoiceFixture(nil, nil, boom)

	err := service.CreateInvoice(context.Background(), domain.Invoice{Total: decimal.NewFromInt(1), CustomerEmail: "x@y.z"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "notify customer")
	assert.Equal(t, []string{"validate", "save", "notify"}, log.calls)
	assert.Len(t, repo.saved, 1)
}

func TestInvoiceHistory_ListInvoices(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	store := memory.NewInvoiceStore()
	service := NewInvoiceService(NewInvoiceValidator(), store, notify.NewInvoiceEmailNotifier(&out))

	require.NoError(t, service.CreateInvoice(ctx, domain.Invoice{Total: decimal.NewFromInt(40), CustomerEmail: "a@b.com"}))
	_ = service.CreateInvoice(ctx, domain.Invoice{Total: decimal.Zero, CustomerEmail: "a@b.com"})

	records, err := NewInvoiceHistory(store).ListInvoices(ctx)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a@b.com", records[0].Invoice.CustomerEmail)
	assert.Equal(t, "Sending invoice email to a@b.com\n", out.String())
}
