package main

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/solidkit/internal/adapters/driven/birds"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/discounts"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/fees"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/notify"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/report"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/console"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/cli"
	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/services"
	"github.com/custodia-labs/solidkit/internal/examples"
	"github.com/custodia-labs/solidkit/internal/logger"
)

// stores groups the record stores of one storage backend.
type stores struct {
	orders interface {
		driven.OrderRepository
		driven.OrderLister
	}
	invoices interface {
		driven.InvoiceRepository
		driven.InvoiceLister
	}
	users interface {
		driven.UserReader
		driven.UserWriter
		driven.UserLister
	}
	close func() error
}

// buildServices is the composition root. It reads the settings, opens the
// configured storage backend and wires every service to it.
func buildServices(opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	st, err := openStores(settings.Storage, opts)
	if err != nil {
		return nil, nil, err
	}

	strategies, err := fees.NewDefaultRegistry().BuildEnabled(settings.Fees)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("building fee strategies: %w", err), st.close())
	}
	payments, err := services.NewPaymentProcessor(strategies...)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("creating payment processor: %w", err), st.close())
	}

	logger.Debug("storage backend: %s", settings.Storage.Backend)

	return &cli.Services{
		Catalog:      examples.NewDefaultRegistry(),
		Orders:       services.NewOrderService(st.orders),
		OrderHistory: services.NewOrderHistory(st.orders),
		Invoices: services.NewInvoiceService(
			services.NewInvoiceValidator(), st.invoices, notify.NewInvoiceEmailNotifier(opts.Out),
		),
		InvoiceHistory: services.NewInvoiceHistory(st.invoices),
		Payments:       payments,
		Discounts:      services.NewDiscountService(discounts.Defaults()...),
		Messages:       services.NewMessageService(opts.Out),
		Birds:          services.NewBirdService(),
		NewBird:        birds.New,
		Profiles:       services.NewUserProfileReader(st.users),
		UserAdmin:      services.NewUserAdministration(st.users, st.users),
		PasswordReset:  services.NewPasswordResetService(st.users, notify.NewUserEmailNotifier(opts.Out)),
		UserReports:    services.NewUserReportService(report.NewUserReportService(st.users)),
		Settings:       settingsService,
	}, st.close, nil
}

func openStores(storage domain.StorageSettings, opts cli.Options) (*stores, error) {
	noop := func() error { return nil }

	switch storage.Backend {
	case domain.StorageBackendMemory:
		return &stores{
			orders:   memory.NewOrderStore(),
			invoices: memory.NewInvoiceStore(),
			users:    memory.NewUserStore(),
			close:    noop,
		}, nil

	case domain.StorageBackendSQLite:
		db, err := sqlite.NewStore(storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &stores{
			orders:   db.OrderStore(),
			invoices: db.InvoiceStore(),
			users:    db.UserStore(),
			close:    db.Close,
		}, nil

	case domain.StorageBackendConsole, "":
		return &stores{
			orders:   console.NewOrderRepository(opts.Out),
			invoices: console.NewInvoiceRepository(opts.Out),
			users:    console.NewUserStore(opts.Out),
			close:    noop,
		}, nil

	default:
		return nil, domain.NewValidationError("storage.backend", fmt.Sprintf("unknown backend %q", storage.Backend))
	}
}
