package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	invoiceTotal string
	invoiceEmail string
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Create and list invoices",
	Long: `Invoice creation is split across a validator, a repository and a
notifier. Each runs in turn and an invalid invoice is never saved.`,
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Validate, save and send an invoice",
	RunE:  runInvoiceCreate,
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored invoices",
	RunE:  runInvoiceList,
}

func init() {
	invoiceCreateCmd.Flags().StringVar(&invoiceTotal, "total", "100", "invoice total")
	invoiceCreateCmd.Flags().StringVar(&invoiceEmail, "email", "", "customer email")
	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceListCmd)
	rootCmd.AddCommand(invoiceCmd)
}

func runInvoiceCreate(cmd *cobra.Command, _ []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	total, err := parseAmount("total", invoiceTotal)
	if err != nil {
		return err
	}

	invoice := domain.Invoice{Total: total, CustomerEmail: invoiceEmail}
	if err := invoiceService.CreateInvoice(cmd.Context(), invoice); err != nil {
		return err
	}
	cmd.Println("Invoice created")
	return nil
}

func runInvoiceList(cmd *cobra.Command, _ []string) error {
	if invoiceHistory == nil {
		return errors.New("invoice history not configured")
	}

	records, err := invoiceHistory.ListInvoices(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No invoices stored.")
		return nil
	}
	for i := range records {
		r := records[i]
		cmd.Printf("%s  %s  %12s  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Invoice.Total.StringFixed(2), r.Invoice.CustomerEmail)
	}
	return nil
}
