package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyFeeCreditCard  = "fees.credit_card_rate"
	keyFeePayPal      = "fees.paypal_rate"
	keyFeePix         = "fees.pix_rate"
	keyFeeEnabled     = "fees.enabled"
	keyOutputStyled   = "output.styled"
)

// feeRateKeys maps each payment method to its rate key.
var feeRateKeys = map[domain.PaymentMethod]string{
	domain.PaymentMethodCreditCard: keyFeeCreditCard,
	domain.PaymentMethodPayPal:     keyFeePayPal,
	domain.PaymentMethodPix:        keyFeePix,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or malformed values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir), // empty means the default location
		},
		Fees: domain.FeeSettings{
			CreditCardRate: s.getRate(keyFeeCreditCard, defaults.Fees.CreditCardRate),
			PayPalRate:     s.getRate(keyFeePayPal, defaults.Fees.PayPalRate),
			PixRate:        s.getRate(keyFeePix, defaults.Fees.PixRate),
			Enabled:        s.getEnabled(defaults.Fees.Enabled),
		},
		Output: domain.OutputSettings{
			Styled: s.getBool(keyOutputStyled, defaults.Output.Styled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Storage
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if settings.Storage.DataDir != "" {
		if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
			return fmt.Errorf("save storage data_dir: %w", err)
		}
	}

	// Fees. Rates are stored as strings so they round-trip exactly.
	if err := s.configStore.Set(keyFeeCreditCard, settings.Fees.CreditCardRate.String()); err != nil {
		return fmt.Errorf("save credit card rate: %w", err)
	}
	if err := s.configStore.Set(keyFeePayPal, settings.Fees.PayPalRate.String()); err != nil {
		return fmt.Errorf("save paypal rate: %w", err)
	}
	if err := s.configStore.Set(keyFeePix, settings.Fees.PixRate.String()); err != nil {
		return fmt.Errorf("save pix rate: %w", err)
	}
	enabled := make([]string, 0, len(settings.Fees.Enabled))
	for _, m := range settings.Fees.Enabled {
		enabled = append(enabled, m.String())
	}
	if err := s.configStore.Set(keyFeeEnabled, enabled); err != nil {
		return fmt.Errorf("save enabled methods: %w", err)
	}

	// Output
	if err := s.configStore.Set(keyOutputStyled, settings.Output.Styled); err != nil {
		return fmt.Errorf("save output styled: %w", err)
	}

	return nil
}

// SetStorageBackend updates the storage backend.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return domain.NewValidationError(keyStorageBackend, fmt.Sprintf("unknown backend %q", backend))
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend

	return s.Save(settings)
}

// SetFeeRate updates the fee rate for one payment method.
// Rates are fractions in [0, 1).
func (s *SettingsService) SetFeeRate(method domain.PaymentMethod, rate decimal.Decimal) error {
	key, ok := feeRateKeys[method]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, method)
	}
	if !validRate(rate) {
		return domain.NewValidationError(key, "rate must be between 0 and 1")
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch method {
	case domain.PaymentMethodCreditCard:
		settings.Fees.CreditCardRate = rate
	case domain.PaymentMethodPayPal:
		settings.Fees.PayPalRate = rate
	case domain.PaymentMethodPix:
		settings.Fees.PixRate = rate
	}

	return s.Save(settings)
}

// SetEnabledMethods replaces the set of accepted payment methods.
func (s *SettingsService) SetEnabledMethods(methods []domain.PaymentMethod) error {
	if len(methods) == 0 {
		return domain.NewValidationError(keyFeeEnabled, "at least one payment method is required")
	}

	seen := make(map[domain.PaymentMethod]bool, len(methods))
	unique := make([]domain.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if !m.IsValid() {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, m)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		unique = append(unique, m)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Fees.Enabled = unique

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

// getRate accepts both the string form written by Save and a bare
// TOML number typed in by hand. Rates outside [0, 1) fall back to defaultVal.
func (s *SettingsService) getRate(key string, defaultVal decimal.Decimal) decimal.Decimal {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	rate := decimal.NewFromFloat(s.configStore.GetFloat(key))
	if str := s.configStore.GetString(key); str != "" {
		var err error
		if rate, err = decimal.NewFromString(str); err != nil {
			return defaultVal
		}
	}
	if !validRate(rate) {
		return defaultVal
	}
	return rate
}

// validRate reports whether rate is a fraction in [0, 1).
func validRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThan(decimal.NewFromInt(1))
}

func (s *SettingsService) getEnabled(defaultVal []domain.PaymentMethod) []domain.PaymentMethod {
	values := s.configStore.GetStringSlice(keyFeeEnabled)
	if len(values) == 0 {
		return defaultVal
	}

	seen := make(map[domain.PaymentMethod]bool, len(values))
	methods := make([]domain.PaymentMethod, 0, len(values))
	for _, v := range values {
		m, err := domain.ParsePaymentMethod(v)
		if err != nil || seen[m] {
			continue
		}
		seen[m] = true
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return defaultVal
	}
	return methods
}
