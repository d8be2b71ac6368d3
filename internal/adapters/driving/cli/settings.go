package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the storage backend, payment fee rates and output style.

Settings live in config.toml under the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting.

Keys:
  storage.backend        console, memory or sqlite
  storage.data_dir       directory of the SQLite database
  fees.credit_card_rate  fractional fee, e.g. 0.03
  fees.paypal_rate       fractional fee, e.g. 0.05
  fees.pix_rate          fractional fee, e.g. 0
  fees.enabled           comma separated methods, e.g. credit_card,pix
  output.styled          true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(render(cmd, headingStyle, "Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	cmd.Println("[Fees]")
	for _, m := range domain.AllPaymentMethods() {
		rate, err := settings.Fees.Rate(m)
		if err != nil {
			return err
		}
		state := "disabled"
		if settings.Fees.IsEnabled(m) {
			state = "enabled"
		}
		cmd.Printf("  %-12s %6s%%  %s\n", m.Description()+":", rate.Shift(2).String(), state)
	}
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Styled: %s\n", yesNo(settings.Output.Styled))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], strings.TrimSpace(args[1])
	if err := applySetting(key, value); err != nil {
		return err
	}
	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func applySetting(key, value string) error {
	switch key {
	case "storage.backend":
		return settingsService.SetStorageBackend(domain.StorageBackend(value))

	case "storage.data_dir":
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		settings.Storage.DataDir = value
		return settingsService.Save(settings)

	case "fees.credit_card_rate", "fees.paypal_rate", "fees.pix_rate":
		method, err := domain.ParsePaymentMethod(strings.TrimSuffix(strings.TrimPrefix(key, "fees."), "_rate"))
		if err != nil {
			return err
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%w: rate %q is not a number", domain.ErrInvalidInput, value)
		}
		return settingsService.SetFeeRate(method, rate)

	case "fees.enabled":
		var methods []domain.PaymentMethod
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			m, err := domain.ParsePaymentMethod(part)
			if err != nil {
				return err
			}
			methods = append(methods, m)
		}
		return settingsService.SetEnabledMethods(methods)

	case "output.styled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not true or false", domain.ErrInvalidInput, value)
		}
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		settings.Output.Styled = b
		return settingsService.Save(settings)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
