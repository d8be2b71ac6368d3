package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	feeMethod string
	feeAmount string
)

var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "Calculate a payment fee",
	Long: `Each payment method is a fee strategy registered with the processor.
Adding a method means registering one more strategy; the processor itself
never changes. Rates and accepted methods come from the fees.* settings.`,
	RunE: runFee,
}

func init() {
	feeCmd.Flags().StringVarP(&feeMethod, "method", "m", "credit_card", "payment method (credit_card, paypal, pix)")
	feeCmd.Flags().StringVarP(&feeAmount, "amount", "a", "100", "payment amount")
	rootCmd.AddCommand(feeCmd)
}

func runFee(cmd *cobra.Command, _ []string) error {
	if paymentProcessor == nil {
		return errors.New("payment processor not configured")
	}

	method, err := domain.ParsePaymentMethod(feeMethod)
	if err != nil {
		return err
	}
	amount, err := parseAmount("amount", feeAmount)
	if err != nil {
		return err
	}

	fee, err := paymentProcessor.CalculateFee(domain.Payment{Method: method, Amount: amount})
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedPaymentMethod) {
			return fmt.Errorf("%w (accepted: %s)", err, acceptedMethods())
		}
		return err
	}

	cmd.Printf("%s fee on %s: %s\n", method.Description(), amount.StringFixed(2), fee.StringFixed(2))
	return nil
}

func acceptedMethods() string {
	methods := paymentProcessor.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
