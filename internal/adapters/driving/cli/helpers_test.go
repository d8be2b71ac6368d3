package cli

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/adapters/driven/birds"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/discounts"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/fees"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/notify"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/report"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/services"
	"github.com/custodia-labs/solidkit/internal/examples"
)

// newTestServices wires memory-backed services that print to out.
func newTestServices(t *testing.T, out io.Writer) *Services {
	t.Helper()

	payments, err := services.NewPaymentProcessor(fees.Defaults()...)
	require.NoError(t, err)

	orders := memory.NewOrderStore()
	invoices := memory.NewInvoiceStore()
	users := memory.NewUserStore(domain.User{ID: 1, Email: "ada@example.com"})

	return &Services{
		Catalog:        examples.NewDefaultRegistry(),
		Orders:         services.NewOrderService(orders),
		OrderHistory:   services.NewOrderHistory(orders),
		Invoices:       services.NewInvoiceService(services.NewInvoiceValidator(), invoices, notify.NewInvoiceEmailNotifier(out)),
		InvoiceHistory: services.NewInvoiceHistory(invoices),
		Payments:       payments,
		Discounts:      services.NewDiscountService(discounts.Defaults()...),
		Messages:       services.NewMessageService(out),
		Birds:          services.NewBirdService(),
		NewBird:        birds.New,
		Profiles:       services.NewUserProfileReader(users),
		UserAdmin:      services.NewUserAdministration(users, users),
		PasswordReset:  services.NewPasswordResetService(users, notify.NewUserEmailNotifier(out)),
		UserReports:    services.NewUserReportService(report.NewUserReportService(users)),
		Settings:       services.NewSettingsService(memory.NewConfigStore()),
	}
}

// setupTestServices injects test services writing to the returned buffer,
// and a cleanup function that clears them and restores flag defaults.
func setupTestServices(t *testing.T) (*bytes.Buffer, func()) {
	t.Helper()
	buf := new(bytes.Buffer)
	SetServices(newTestServices(t, buf))
	return buf, func() {
		SetServices(nil)
		servicesConfigured = false
		resetFlags()
	}
}

// resetFlags restores package flag variables, which outlive a single Execute.
func resetFlags() {
	verbose = false
	configDir = ""
	examplesPrinciple, examplesVariant = "", ""
	orderID, orderAmount = 1, "100"
	invoiceTotal, invoiceEmail = "100", ""
	feeMethod, feeAmount = "credit_card", "100"
	discountAmount = "100"
	discountHoliday, discountFirstPurchase, discountEmployee, discountJSON = false, false, false, false
	discountLoyaltyYears = 0
	userID, userEmail = 0, ""
	now := time.Now()
	reportMonth, reportYear = int(now.Month()), now.Year()
}

// execute runs the root command with args, writing its output to buf.
func execute(buf *bytes.Buffer, args ...string) error {
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	return rootCmd.Execute()
}
