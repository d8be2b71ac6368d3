// Package cli implements the solidkit command line interface.
//
// Commands talk to the core only through driving ports. The composition
// root injects them with SetServices, or with SetServiceFactory when the
// services depend on flags such as --config-dir.
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
	"github.com/custodia-labs/solidkit/internal/logger"
)

var version = "dev"

var (
	verbose   bool
	configDir string
)

// BirdFactory returns the named bird, reporting to out.
type BirdFactory func(name string, out io.Writer) (driven.Bird, bool)

// Services holds every port the commands use. Nil fields disable the
// commands that need them.
type Services struct {
	Catalog        driving.ExampleCatalog
	Orders         driving.OrderService
	OrderHistory   driving.OrderHistory
	Invoices       driving.InvoiceService
	InvoiceHistory driving.InvoiceHistory
	Payments       driving.PaymentProcessor
	Discounts      driving.DiscountService
	Messages       driving.MessageService
	Birds          driving.BirdService
	NewBird        BirdFactory
	Profiles       driving.UserProfileReader
	UserAdmin      driving.UserAdministration
	PasswordReset  driving.PasswordResetService
	UserReports    driving.UserReportService
	Settings       driving.SettingsService
}

// Options carries the parsed global flags to a ServiceFactory.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means default.
	ConfigDir string
	// Out is where console adapters print.
	Out io.Writer
}

// ServiceFactory builds the services after flags are parsed.
// The returned closer, if any, runs when Execute finishes.
type ServiceFactory func(opts Options) (*Services, func() error, error)

var (
	exampleCatalog     driving.ExampleCatalog
	orderService       driving.OrderService
	orderHistory       driving.OrderHistory
	invoiceService     driving.InvoiceService
	invoiceHistory     driving.InvoiceHistory
	paymentProcessor   driving.PaymentProcessor
	discountService    driving.DiscountService
	messageService     driving.MessageService
	birdService        driving.BirdService
	newBird            BirdFactory
	profileReader      driving.UserProfileReader
	userAdmin          driving.UserAdministration
	passwordReset      driving.PasswordResetService
	userReports        driving.UserReportService
	settingsService    driving.SettingsService
	serviceFactory     ServiceFactory
	closeServices      func() error
	servicesConfigured bool
)

var rootCmd = &cobra.Command{
	Use:   "solidkit",
	Short: "Runnable SOLID, DRY and KISS/YAGNI examples",
	Long: `solidkit shows each design principle twice: once broken, once followed.

Browse the catalog with "solidkit examples list", run a pair side by side
with "solidkit examples run ocp/bad" and "solidkit examples run ocp/good",
or drive the well-designed services directly through the order, invoice,
fee, discount, message, bird and user commands.`,
	SilenceUsage:      true,
	PersistentPreRunE: runRootPreRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every orchestration step to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.solidkit)")
}

// SetServices injects the ports used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	exampleCatalog = s.Catalog
	orderService = s.Orders
	orderHistory = s.OrderHistory
	invoiceService = s.Invoices
	invoiceHistory = s.InvoiceHistory
	paymentProcessor = s.Payments
	discountService = s.Discounts
	messageService = s.Messages
	birdService = s.Birds
	newBird = s.NewBird
	profileReader = s.Profiles
	userAdmin = s.UserAdmin
	passwordReset = s.PasswordReset
	userReports = s.UserReports
	settingsService = s.Settings
	servicesConfigured = true
}

// SetServiceFactory defers building the services until flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
	servicesConfigured = false
}

// SetVersion sets the version reported by "solidkit version".
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases the services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if closeErr := closeServices(); closeErr != nil && err == nil {
			err = closeErr
		}
		closeServices = nil
	}
	return err
}

func runRootPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if servicesConfigured || serviceFactory == nil {
		return nil
	}

	services, closer, err := serviceFactory(Options{
		ConfigDir: configDir,
		Out:       cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	if services == nil {
		return errors.New("service factory returned no services")
	}
	SetServices(services)
	closeServices = closer
	return nil
}
