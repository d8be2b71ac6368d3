package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	orderID     int
	orderAmount string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place and list orders",
	Long: `Orders go through a service that only knows the OrderRepository
abstraction. Where they end up follows the storage.backend setting.`,
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place an order",
	RunE:  runOrderPlace,
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored orders",
	RunE:  runOrderList,
}

func init() {
	orderPlaceCmd.Flags().IntVar(&orderID, "id", 1, "order id")
	orderPlaceCmd.Flags().StringVar(&orderAmount, "amount", "100", "order amount")
	orderCmd.AddCommand(orderPlaceCmd)
	orderCmd.AddCommand(orderListCmd)
	rootCmd.AddCommand(orderCmd)
}

func runOrderPlace(cmd *cobra.Command, _ []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	amount, err := parseAmount("amount", orderAmount)
	if err != nil {
		return err
	}

	order := domain.Order{ID: orderID, Amount: amount}
	if err := orderService.PlaceOrder(cmd.Context(), order); err != nil {
		return err
	}
	cmd.Printf("Order %d placed (%s)\n", order.ID, order.Amount.StringFixed(2))
	return nil
}

func runOrderList(cmd *cobra.Command, _ []string) error {
	if orderHistory == nil {
		return errors.New("order history not configured")
	}

	orders, err := orderHistory.ListOrders(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}
	if len(orders) == 0 {
		cmd.Println("No orders stored.")
		return nil
	}
	for i := range orders {
		cmd.Printf("%6d  %12s\n", orders[i].ID, orders[i].Amount.StringFixed(2))
	}
	return nil
}

// parseAmount reads a non-negative decimal flag value.
func parseAmount(flag, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: --%s %q is not a number", domain.ErrInvalidInput, flag, value)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: --%s must not be negative", domain.ErrInvalidInput, flag)
	}
	return amount, nil
}
