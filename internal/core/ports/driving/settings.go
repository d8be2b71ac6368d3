package driving

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetStorageBackend updates the storage backend.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetFeeRate updates the fractional fee rate for one payment method.
	SetFeeRate(method domain.PaymentMethod, rate decimal.Decimal) error

	// SetEnabledMethods replaces the set of accepted payment methods.
	SetEnabledMethods(methods []domain.PaymentMethod) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
