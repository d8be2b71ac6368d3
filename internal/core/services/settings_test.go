package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
	assert.Empty(t, settings.Storage.DataDir)
	assert.True(t, defaults.Fees.CreditCardRate.Equal(settings.Fees.CreditCardRate))
	assert.True(t, defaults.Fees.PayPalRate.Equal(settings.Fees.PayPalRate))
	assert.True(t, settings.Fees.PixRate.IsZero())
	assert.Equal(t, defaults.Fees.Enabled, settings.Fees.Enabled)
	assert.True(t, settings.Output.Styled)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "sqlite")
	_ = store.Set("storage.data_dir", "/tmp/solidkit")
	_ = store.Set("fees.paypal_rate", "0.07")
	_ = store.Set("fees.credit_card_rate", 0.025) // bare number, as written by hand in TOML
	_ = store.Set("fees.enabled", []string{"pix", "paypal"})
	_ = store.Set("output.styled", false)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StorageBackendSQLite, settings.Storage.Backend)
	assert.Equal(t, "/tmp/solidkit", settings.Storage.DataDir)
	assert.True(t, settings.Fees.PayPalRate.Equal(decimal.RequireFromString("0.07")))
	assert.True(t, settings.Fees.CreditCardRate.Equal(decimal.RequireFromString("0.025")))
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentMethodPix, domain.PaymentMethodPayPal}, settings.Fees.Enabled)
	assert.False(t, settings.Output.Styled)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "oracle")
	_ = store.Set("fees.paypal_rate", "five percent")
	_ = store.Set("fees.enabled", []string{"bitcoin"})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
	assert.True(t, defaults.Fees.PayPalRate.Equal(settings.Fees.PayPalRate))
	assert.Equal(t, defaults.Fees.Enabled, settings.Fees.Enabled)
}

func TestSettingsService_Get_OutOfRangeRatesReturnDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"negative string", "-0.5"},
		{"string above one", "1.5"},
		{"exactly one", "1"},
		{"negative number", -0.5},
		{"number above one", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			_ = store.Set("fees.paypal_rate", tt.value)

			settings, err := NewSettingsService(store).Get()

			require.NoError(t, err)
			defaults := domain.DefaultAppSettings()
			assert.True(t, defaults.Fees.PayPalRate.Equal(settings.Fees.PayPalRate), "got %s", settings.Fees.PayPalRate)
		})
	}
}

func TestSettingsService_Get_DuplicateEnabledMethods(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("fees.enabled", []string{"paypal", "PayPal", "pix", "paypal"})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentMethodPayPal, domain.PaymentMethodPix}, settings.Fees.Enabled)
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Storage.Backend = domain.StorageBackendMemory
	settings.Fees.PixRate = decimal.RequireFromString("0.01")
	settings.Fees.Enabled = []domain.PaymentMethod{domain.PaymentMethodPix}
	settings.Output.Styled = false

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "memory", store.GetString("storage.backend"))
	assert.Equal(t, "0.01", store.GetString("fees.pix_rate"))
	assert.Equal(t, []string{"pix"}, store.GetStringSlice("fees.enabled"))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageBackendMemory, loaded.Storage.Backend)
	assert.True(t, loaded.Fees.PixRate.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentMethodPix}, loaded.Fees.Enabled)
	assert.False(t, loaded.Output.Styled)
}

func TestSettingsService_SetStorageBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetStorageBackend(domain.StorageBackendSQLite))
	assert.Equal(t, "sqlite", store.GetString("storage.backend"))

	err := service.SetStorageBackend("oracle")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
}

func TestSettingsService_SetFeeRate(t *testing.T) {
	tests := []struct {
		name    string
		method  domain.PaymentMethod
		rate    string
		wantErr error
	}{
		{"paypal", domain.PaymentMethodPayPal, "0.04", nil},
		{"pix zero", domain.PaymentMethodPix, "0", nil},
		{"negative", domain.PaymentMethodCreditCard, "-0.01", domain.ErrValidation},
		{"one", domain.PaymentMethodCreditCard, "1", domain.ErrValidation},
		{"unknown method", "bitcoin", "0.01", domain.ErrUnsupportedPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())
			rate := decimal.RequireFromString(tt.rate)

			err := service.SetFeeRate(tt.method, rate)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			settings, err := service.Get()
			require.NoError(t, err)
			got, err := settings.Fees.Rate(tt.method)
			require.NoError(t, err)
			assert.True(t, got.Equal(rate), "got %s want %s", got, rate)
		})
	}
}

func TestSettingsService_SetEnabledMethods(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetEnabledMethods([]domain.PaymentMethod{
		domain.PaymentMethodPayPal,
		domain.PaymentMethodPayPal,
		domain.PaymentMethodPix,
	})
	require.NoError(t, err)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentMethodPayPal, domain.PaymentMethodPix}, settings.Fees.Enabled)
	assert.False(t, settings.Fees.IsEnabled(domain.PaymentMethodCreditCard))
}

func TestSettingsService_SetEnabledMethods_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetEnabledMethods(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = service.SetEnabledMethods([]domain.PaymentMethod{"bitcoin"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedPaymentMethod)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.StorageBackendConsole, service.GetDefaults().Storage.Backend)
}
