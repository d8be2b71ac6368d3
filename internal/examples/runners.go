package examples

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/adapters/driven/birds"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/discounts"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/fees"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/notify"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/report"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/console"
	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/services"
	"github.com/custodia-labs/solidkit/internal/counterexamples"
)

// Scenario inputs shared by the good and bad variants.
var (
	sampleInvoice  = domain.Invoice{Total: decimal.NewFromInt(100), CustomerEmail: "customer@example.com"}
	invalidInvoice = domain.Invoice{Total: decimal.Zero, CustomerEmail: "customer@example.com"}
	sampleOrder    = domain.Order{ID: 1, Amount: decimal.NewFromInt(100), IsHoliday: true, LoyaltyYears: 6}
	feeAmount      = decimal.NewFromInt(200)
	sampleMessage  = domain.Message{Content: "Hello"}
)

// --- SRP ---

func runSRPGood(ctx context.Context, w io.Writer) error {
	service := services.NewInvoiceService(
		services.NewInvoiceValidator(),
		console.NewInvoiceRepository(w),
		notify.NewInvoiceEmailNotifier(w),
	)

	if err := service.CreateInvoice(ctx, sampleInvoice); err != nil {
		return err
	}

	err := service.CreateInvoice(ctx, invalidInvoice)
	if !errors.Is(err, domain.ErrValidation) {
		return fmt.Errorf("expected validation error, got %v", err)
	}
	fmt.Fprintf(w, "Rejected: %v\n", err)
	return nil
}

func runSRPBad(_ context.Context, w io.Writer) error {
	processor := counterexamples.NewInvoiceProcessor(w)

	if err := processor.CreateInvoice(sampleInvoice); err != nil {
		return err
	}
	if err := processor.CreateInvoice(invalidInvoice); err != nil {
		fmt.Fprintf(w, "Rejected: %v\n", err)
	}
	return nil
}

// --- OCP ---

func runOCPGood(_ context.Context, w io.Writer) error {
	processor, err := services.NewPaymentProcessor(fees.Defaults()...)
	if err != nil {
		return err
	}

	for _, method := range processor.Methods() {
		fee, err := processor.CalculateFee(domain.Payment{Method: method, Amount: feeAmount})
		if err != nil {
			return err
		}
		writeFee(w, method, fee)
	}
	return nil
}

func runOCPBad(_ context.Context, w io.Writer) error {
	processor := counterexamples.BranchingPaymentProcessor{}

	for _, method := range domain.AllPaymentMethods() {
		fee, err := processor.CalculateFee(domain.Payment{Method: method, Amount: feeAmount})
		if err != nil {
			return err
		}
		writeFee(w, method, fee)
	}
	return nil
}

func writeFee(w io.Writer, method domain.PaymentMethod, fee decimal.Decimal) {
	fmt.Fprintf(w, "%s fee on %s: %s\n", method.Description(), feeAmount.StringFixed(2), fee.StringFixed(2))
}

// --- LSP ---

func runLSPGood(_ context.Context, w io.Writer) error {
	service := services.NewBirdService()
	sparrow := birds.NewSparrow(w)
	penguin := birds.NewPenguin(w)

	service.MakeBirdMove(sparrow)
	service.MakeBirdMove(penguin)
	service.MakeBirdFly(sparrow)

	if _, ok := birds.AsFlying(penguin); !ok {
		fmt.Fprintln(w, "Penguin has no flying capability; MakeBirdFly does not accept it")
	}
	return nil
}

func runLSPBad(_ context.Context, w io.Writer) error {
	service := counterexamples.FlightlessBirdService{}

	if err := service.MakeBirdFly(counterexamples.NewSparrow(w)); err != nil {
		return err
	}

	err := service.MakeBirdFly(counterexamples.Penguin{})
	if !errors.Is(err, domain.ErrUnsupportedBehaviour) {
		return fmt.Errorf("expected unsupported behaviour, got %v", err)
	}
	fmt.Fprintf(w, "Run-time failure: %v\n", err)
	return nil
}

// --- ISP ---

func runISPGood(ctx context.Context, w io.Writer) error {
	users := memory.NewUserStore(domain.User{ID: 1, Email: "user@email.com"})

	profile, err := services.NewUserProfileReader(users).GetProfile(ctx, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Profile: #%d %s\n", profile.ID, profile.Email)

	if err := notify.NewUserEmailNotifier(w).SendPasswordResetEmail(ctx, *profile); err != nil {
		return err
	}

	data, err := report.NewUserReportService(users).GenerateMonthlyReport(ctx, 1, 2025)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Monthly report (%d bytes):\n%s", len(data), data)
	return nil
}

func runISPBad(_ context.Context, w io.Writer) error {
	fat := counterexamples.NewUserService(w)

	profile := counterexamples.NewFatUserProfileReader(fat).GetProfile(1)
	fmt.Fprintf(w, "Profile: #%d %s\n", profile.ID, profile.Email)
	fmt.Fprintln(w, "The reader also depends on Create, Update, Delete, SendPasswordResetEmail and GenerateMonthlyReport")
	return nil
}

// --- DIP ---

func runDIPGood(ctx context.Context, w io.Writer) error {
	if err := services.NewOrderService(console.NewOrderRepository(w)).PlaceOrder(ctx, sampleOrder); err != nil {
		return err
	}

	store := memory.NewOrderStore()
	if err := services.NewOrderService(store).PlaceOrder(ctx, sampleOrder); err != nil {
		return err
	}
	orders, err := store.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Same service, in-memory repository: %d order(s) stored\n", len(orders))
	return nil
}

func runDIPBad(_ context.Context, w io.Writer) error {
	counterexamples.NewCoupledOrderService(w).PlaceOrder(sampleOrder)
	return nil
}

// --- KISS / YAGNI ---

func runKISSGood(ctx context.Context, w io.Writer) error {
	return services.NewMessageService(w).Send(ctx, sampleMessage)
}

func runKISSBad(_ context.Context, w io.Writer) error {
	service := counterexamples.NewOverEngineeredMessageService(
		counterexamples.DefaultMessageFormatter{},
		counterexamples.NewEmailMessageSender(w),
	)
	service.Send(sampleMessage)
	return nil
}

// --- DRY ---

func runDRYGood(_ context.Context, w io.Writer) error {
	service := services.NewDiscountService(discounts.Defaults()...)

	for _, line := range service.Breakdown(sampleOrder) {
		fmt.Fprintf(w, "  %-16s %s\n", line.Rule, line.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "Total discount: %s\n", service.CalculateDiscount(sampleOrder).StringFixed(2))
	return nil
}

func runDRYBad(_ context.Context, w io.Writer) error {
	total := counterexamples.FlagDiscountCalculator{}.Total(sampleOrder)
	fmt.Fprintf(w, "Total discount: %s\n", total.StringFixed(2))
	return nil
}
