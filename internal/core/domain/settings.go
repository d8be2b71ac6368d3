package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StorageBackend selects where orders, invoices and users are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendConsole only prints what would be saved.
	StorageBackendConsole StorageBackend = "console"

	// StorageBackendMemory keeps records for the lifetime of the process.
	StorageBackendMemory StorageBackend = "memory"

	// StorageBackendSQLite writes records to a local SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendConsole, StorageBackendMemory, StorageBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendConsole:
		return "Console (simulated, prints only)"
	case StorageBackendMemory:
		return "Memory (per process)"
	case StorageBackendSQLite:
		return "SQLite (local file)"
	default:
		return unknownDescription
	}
}

// AllStorageBackends returns every storage backend.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{
		StorageBackendConsole,
		StorageBackendMemory,
		StorageBackendSQLite,
	}
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend selects the store implementation.
	Backend StorageBackend

	// DataDir is where the SQLite database lives. Empty means ~/.solidkit/data.
	DataDir string
}

// FeeSettings holds the payment fee strategy configuration.
type FeeSettings struct {
	// CreditCardRate is the fractional fee for card payments (0.03 = 3%).
	CreditCardRate decimal.Decimal

	// PayPalRate is the fractional fee for PayPal payments.
	PayPalRate decimal.Decimal

	// PixRate is the fractional fee for Pix transfers.
	PixRate decimal.Decimal

	// Enabled lists the methods the processor accepts.
	Enabled []PaymentMethod
}

// Rate returns the configured rate for a method.
func (f FeeSettings) Rate(m PaymentMethod) (decimal.Decimal, error) {
	switch m {
	case PaymentMethodCreditCard:
		return f.CreditCardRate, nil
	case PaymentMethodPayPal:
		return f.PayPalRate, nil
	case PaymentMethodPix:
		return f.PixRate, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, m)
	}
}

// IsEnabled returns true if the method is in the enabled set.
func (f FeeSettings) IsEnabled(m PaymentMethod) bool {
	for _, enabled := range f.Enabled {
		if enabled == m {
			return true
		}
	}
	return false
}

// OutputSettings holds presentation preferences for the CLI.
type OutputSettings struct {
	// Styled enables coloured output when writing to a terminal.
	Styled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storage StorageSettings
	Fees    FeeSettings
	Output  OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Storage only prints until a backend is chosen.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageBackendConsole,
		},
		Fees: FeeSettings{
			CreditCardRate: decimal.RequireFromString("0.03"),
			PayPalRate:     decimal.RequireFromString("0.05"),
			PixRate:        decimal.Zero,
			Enabled:        AllPaymentMethods(),
		},
		Output: OutputSettings{
			Styled: true,
		},
	}
}
