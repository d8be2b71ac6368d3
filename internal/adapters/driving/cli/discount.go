package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	discountAmount        string
	discountHoliday       bool
	discountFirstPurchase bool
	discountLoyaltyYears  int
	discountEmployee      bool
	discountJSON          bool
)

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Calculate an order discount",
	Long: `Every discount rule owns its condition and percentage once. The total
is the sum of every rule that applies to the order.`,
	RunE: runDiscount,
}

func init() {
	discountCmd.Flags().StringVar(&discountAmount, "amount", "100", "order amount")
	discountCmd.Flags().BoolVar(&discountHoliday, "holiday", false, "order placed during a holiday campaign")
	discountCmd.Flags().BoolVar(&discountFirstPurchase, "first-purchase", false, "customer's first order")
	discountCmd.Flags().IntVar(&discountLoyaltyYears, "loyalty-years", 0, "years the customer has been with us")
	discountCmd.Flags().BoolVar(&discountEmployee, "employee", false, "order placed by staff")
	discountCmd.Flags().BoolVar(&discountJSON, "json", false, "output the breakdown as JSON")
	rootCmd.AddCommand(discountCmd)
}

type discountLineJSON struct {
	Rule   string `json:"rule"`
	Amount string `json:"amount"`
}

type discountJSONOutput struct {
	Amount string             `json:"amount"`
	Lines  []discountLineJSON `json:"lines"`
	Total  string             `json:"total"`
}

func runDiscount(cmd *cobra.Command, _ []string) error {
	if discountService == nil {
		return errors.New("discount service not configured")
	}

	amount, err := parseAmount("amount", discountAmount)
	if err != nil {
		return err
	}
	if discountLoyaltyYears < 0 {
		return fmt.Errorf("%w: --loyalty-years must not be negative", domain.ErrInvalidInput)
	}

	order := domain.Order{
		Amount:          amount,
		IsHoliday:       discountHoliday,
		IsFirstPurchase: discountFirstPurchase,
		LoyaltyYears:    discountLoyaltyYears,
		IsEmployee:      discountEmployee,
	}
	lines := discountService.Breakdown(order)
	total := discountService.CalculateDiscount(order)

	if discountJSON {
		out := discountJSONOutput{
			Amount: amount.StringFixed(2),
			Lines:  make([]discountLineJSON, 0, len(lines)),
			Total:  total.StringFixed(2),
		}
		for _, line := range lines {
			out.Lines = append(out.Lines, discountLineJSON{Rule: line.Rule, Amount: line.Amount.StringFixed(2)})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal discount: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, line := range lines {
		if line.Amount.IsZero() {
			cmd.Printf("  %-16s %10s\n", line.Rule, render(cmd, mutedStyle, line.Amount.StringFixed(2)))
			continue
		}
		cmd.Printf("  %-16s %10s\n", line.Rule, line.Amount.StringFixed(2))
	}
	cmd.Printf("Total discount: %s\n", total.StringFixed(2))
	return nil
}
